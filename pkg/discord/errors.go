package discord

import (
	"errors"
	"fmt"
)

var (
	errWebhookRequired = errors.New("discord: webhook URL is required")

	ErrInvalidWebhookURL = errors.New("discord: webhook URL must be .../webhooks/{id}/{token}")
	ErrMessageTooLong    = errors.New("discord: message content too long")
	ErrTooManyEmbeds     = errors.New("discord: too many embeds in one message")
	ErrEmptyMessage      = errors.New("discord: message has no content, embeds or files")
)

// StatusError is returned when Discord answers with a non-success status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("discord webhook returned status %d: %s", e.StatusCode, e.Body)
}

// Temporary reports whether retrying can help.
func (e *StatusError) Temporary() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}
