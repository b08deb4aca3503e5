package embed

import (
	"context"

	"smap-embeds/pkg/embeds"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Preview builds and validates one embed without sending it.
	Preview(ctx context.Context, ip PreviewInput) (PreviewOutput, error)
	// Send builds every embed and delivers them in one webhook message.
	Send(ctx context.Context, ip SendInput) (SendOutput, error)
	// Limits returns a copy of the limits requests are validated against.
	Limits(ctx context.Context) *embeds.Limits
}
