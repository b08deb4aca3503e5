package discord

import (
	"context"
	"strings"

	"smap-embeds/pkg/log"
)

type IDiscord interface {
	// Execute posts msg to the webhook, uploading msg.Files as multipart when present.
	Execute(ctx context.Context, msg Message) error
	SendMessage(ctx context.Context, content string) error
	ReportBug(ctx context.Context, message string) error
	GetWebhookURL() string
	Close() error
}

func parseWebhookURL(webhookURL string) (id, token string, err error) {
	webhookURL = strings.TrimSpace(webhookURL)
	var rest string
	for _, prefix := range webhookPrefixes {
		if strings.HasPrefix(webhookURL, prefix) {
			rest = strings.TrimPrefix(webhookURL, prefix)
			break
		}
	}
	if rest == "" {
		return "", "", ErrInvalidWebhookURL
	}
	rest, _, _ = strings.Cut(rest, "?")
	parts := strings.SplitN(strings.TrimSuffix(rest, "/"), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", ErrInvalidWebhookURL
	}
	return parts[0], parts[1], nil
}

// New builds a webhook client with DefaultConfig.
func New(l log.Logger, webhookURL string) (IDiscord, error) {
	return NewWithConfig(l, webhookURL, DefaultConfig())
}

func NewWithConfig(l log.Logger, webhookURL string, cfg Config) (IDiscord, error) {
	if webhookURL == "" {
		return nil, errWebhookRequired
	}
	id, token, err := parseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}
	return newImpl(l, id, token, cfg), nil
}
