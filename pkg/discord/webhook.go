package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"smap-embeds/pkg/log"
)

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     30 * time.Second,
		},
	}
}

// DefaultConfig returns the default Discord config.
func DefaultConfig() Config {
	return Config{
		Timeout:         DefaultTimeout,
		RetryCount:      DefaultRetryCount,
		RetryDelay:      DefaultRetryDelay,
		DefaultUsername: DefaultUsername,
		APIBase:         defaultAPIBase,
	}
}

func newImpl(l log.Logger, id, token string, cfg Config) *discordImpl {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.APIBase == "" {
		cfg.APIBase = defaultAPIBase
	}
	return &discordImpl{
		l:       l,
		webhook: &webhookInfo{id: id, token: token},
		config:  cfg,
		client:  newHTTPClient(cfg.Timeout),
	}
}

func (d *discordImpl) GetWebhookURL() string {
	return fmt.Sprintf("%s/webhooks/%s/%s", strings.TrimSuffix(d.config.APIBase, "/"), d.webhook.id, d.webhook.token)
}

func (d *discordImpl) Close() error {
	if d.client != nil {
		d.client.CloseIdleConnections()
	}
	return nil
}

func (d *discordImpl) Execute(ctx context.Context, msg Message) error {
	if utf8.RuneCountInString(msg.Content) > MaxMessageLength {
		return fmt.Errorf("%w: %d characters (max: %d)", ErrMessageTooLong, utf8.RuneCountInString(msg.Content), MaxMessageLength)
	}
	if len(msg.Embeds) > MaxEmbedsPerMessage {
		return fmt.Errorf("%w: %d (max: %d)", ErrTooManyEmbeds, len(msg.Embeds), MaxEmbedsPerMessage)
	}
	if msg.Content == "" && len(msg.Embeds) == 0 && len(msg.Files) == 0 {
		return ErrEmptyMessage
	}

	payload := &WebhookPayload{
		Content:   msg.Content,
		Username:  msg.Username,
		AvatarURL: msg.AvatarURL,
		Embeds:    msg.Embeds,
	}
	if payload.Username == "" {
		payload.Username = d.config.DefaultUsername
	}
	if payload.AvatarURL == "" {
		payload.AvatarURL = d.config.DefaultAvatarURL
	}

	// Readers are drained once so every retry sends the same bytes.
	uploads := make([]upload, 0, len(msg.Files))
	for i, f := range msg.Files {
		if f.Reader == nil {
			return fmt.Errorf("discord: file %q has no reader", f.Name)
		}
		data, err := io.ReadAll(f.Reader)
		if err != nil {
			return fmt.Errorf("failed to read file %q: %w", f.Name, err)
		}
		uploads = append(uploads, upload{name: f.Name, data: data})
		payload.Attachments = append(payload.Attachments, Attachment{ID: i, Filename: f.Name})
	}

	return d.sendWithRetry(ctx, payload, uploads)
}

func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.Execute(ctx, Message{Content: content})
}

func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	desc := truncate(message, ReportBugDescLen-6)
	embed := NewEmbed().
		SetTitle(ReportBugTitle).
		SetDescription("```" + desc + "```").
		SetColor(ColorError).
		SetTimestamp(time.Now())
	return d.Execute(ctx, Message{Embeds: []Embed{*embed}})
}

func (d *discordImpl) sendWithRetry(ctx context.Context, payload *WebhookPayload, uploads []upload) error {
	var lastErr error
	for attempt := 0; attempt <= d.config.RetryCount; attempt++ {
		if attempt > 0 {
			if d.l != nil {
				d.l.Infof(ctx, "pkg.discord.webhook.sendWithRetry: retrying attempt %d/%d", attempt, d.config.RetryCount)
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(d.config.RetryDelay):
			}
		}

		err := d.sendRequest(ctx, payload, uploads)
		if err == nil {
			return nil
		}
		lastErr = err
		if d.l != nil {
			d.l.Warnf(ctx, "pkg.discord.webhook.sendWithRetry: attempt %d failed: %v", attempt+1, err)
		}

		var statusErr *StatusError
		if errors.As(err, &statusErr) && !statusErr.Temporary() {
			return err
		}
	}
	return fmt.Errorf("failed after %d attempts, last error: %w", d.config.RetryCount+1, lastErr)
}

func (d *discordImpl) sendRequest(ctx context.Context, payload *WebhookPayload, uploads []upload) error {
	body, contentType, err := encodePayload(payload, uploads)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.GetWebhookURL(), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("User-Agent", UserAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}
	return nil
}

// encodePayload returns plain JSON, or multipart with payload_json and files[n] parts when uploads exist.
func encodePayload(payload *WebhookPayload, uploads []upload) (io.Reader, string, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal payload: %w", err)
	}
	if len(uploads) == 0 {
		return bytes.NewReader(jsonData), "application/json", nil
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("payload_json", string(jsonData)); err != nil {
		return nil, "", fmt.Errorf("failed to write payload_json: %w", err)
	}
	for i, u := range uploads {
		part, err := w.CreateFormFile(fmt.Sprintf("files[%d]", i), u.name)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create file part: %w", err)
		}
		if _, err := part.Write(u.data); err != nil {
			return nil, "", fmt.Errorf("failed to write file part: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	r := []rune(s)
	return string(r[:maxLen-3]) + "..."
}
