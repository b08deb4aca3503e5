package discord

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smap-embeds/pkg/log"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*discordImpl, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	cfg := DefaultConfig()
	cfg.APIBase = srv.URL
	cfg.RetryCount = 2
	cfg.RetryDelay = time.Millisecond
	return newImpl(log.NewNop(), "123", "tok", cfg), srv
}

func TestParseWebhookURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantID    string
		wantToken string
		wantErr   bool
	}{
		{name: "valid", url: "https://discord.com/api/webhooks/1/abc", wantID: "1", wantToken: "abc"},
		{name: "legacy host with query", url: " https://discordapp.com/api/webhooks/2/def?wait=true ", wantID: "2", wantToken: "def"},
		{name: "wrong host", url: "https://example.com/api/webhooks/1/abc", wantErr: true},
		{name: "missing token", url: "https://discord.com/api/webhooks/1", wantErr: true},
		{name: "empty id", url: "https://discord.com/api/webhooks//abc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, token, err := parseWebhookURL(tt.url)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidWebhookURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestNewRequiresURL(t *testing.T) {
	_, err := New(log.NewNop(), "")
	assert.Error(t, err)

	d, err := New(log.NewNop(), "https://discord.com/api/webhooks/1/abc")
	require.NoError(t, err)
	assert.Equal(t, "https://discord.com/api/webhooks/1/abc", d.GetWebhookURL())
	assert.NoError(t, d.Close())
}

func TestExecuteJSON(t *testing.T) {
	var got WebhookPayload
	d, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/webhooks/123/tok", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, UserAgent, r.Header.Get("User-Agent"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	})

	embed := NewEmbed().SetTitle("Hi").SetColor(ColorDark)
	err := d.Execute(context.Background(), Message{Content: "hello", Embeds: []Embed{*embed}})
	require.NoError(t, err)

	assert.Equal(t, "hello", got.Content)
	assert.Equal(t, DefaultUsername, got.Username)
	require.Len(t, got.Embeds, 1)
	assert.Equal(t, "Hi", got.Embeds[0].Title)
	assert.Empty(t, got.Attachments)
}

func TestExecuteMultipart(t *testing.T) {
	d, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
		require.NoError(t, r.ParseMultipartForm(1<<20))

		var payload WebhookPayload
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("payload_json")), &payload))
		require.Len(t, payload.Attachments, 1)
		assert.Equal(t, "cat.png", payload.Attachments[0].Filename)
		assert.Equal(t, "attachment://cat.png", payload.Embeds[0].Image.URL)

		f, hdr, err := r.FormFile("files[0]")
		require.NoError(t, err)
		defer f.Close()
		body, _ := io.ReadAll(f)
		assert.Equal(t, "cat.png", hdr.Filename)
		assert.Equal(t, "meow", string(body))
		w.WriteHeader(http.StatusOK)
	})

	file := NewFile("images/cat.png", strings.NewReader("meow"))
	embed := NewEmbed().SetImage(file.AttachmentURL())
	err := d.Execute(context.Background(), Message{Embeds: []Embed{*embed}, Files: []File{*file}})
	require.NoError(t, err)
}

func TestExecuteRetry(t *testing.T) {
	tests := []struct {
		name      string
		statuses  []int
		wantCalls int32
		wantErr   bool
	}{
		{name: "recovers after server error", statuses: []int{500, 204}, wantCalls: 2},
		{name: "retries rate limit", statuses: []int{429, 429, 200}, wantCalls: 3},
		{name: "gives up after retry count", statuses: []int{502, 502, 502}, wantCalls: 3, wantErr: true},
		{name: "client error is final", statuses: []int{400}, wantCalls: 1, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			d, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				n := atomic.AddInt32(&calls, 1)
				w.WriteHeader(tt.statuses[int(n)-1])
			})

			err := d.Execute(context.Background(), Message{Content: "x", Files: []File{{Name: "a.txt", Reader: strings.NewReader("a")}}})
			if tt.wantErr {
				var statusErr *StatusError
				assert.True(t, errors.As(err, &statusErr))
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantCalls, atomic.LoadInt32(&calls))
		})
	}
}

func TestExecuteValidation(t *testing.T) {
	d, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request must not be sent")
	})

	tests := []struct {
		name string
		msg  Message
		want error
	}{
		{name: "empty", msg: Message{}, want: ErrEmptyMessage},
		{name: "content too long", msg: Message{Content: strings.Repeat("é", MaxMessageLength+1)}, want: ErrMessageTooLong},
		{name: "too many embeds", msg: Message{Embeds: make([]Embed, MaxEmbedsPerMessage+1)}, want: ErrTooManyEmbeds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, d.Execute(context.Background(), tt.msg), tt.want)
		})
	}
}

func TestReportBug(t *testing.T) {
	var got WebhookPayload
	d, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, d.ReportBug(context.Background(), strings.Repeat("x", 5000)))
	require.Len(t, got.Embeds, 1)
	assert.Equal(t, ReportBugTitle, got.Embeds[0].Title)
	assert.Equal(t, ColorError, got.Embeds[0].Color)
	assert.Len(t, []rune(got.Embeds[0].Description), ReportBugDescLen)
}
