package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"smap-embeds/internal/alert"
	"smap-embeds/pkg/discord"
	"smap-embeds/pkg/embeds"

	"github.com/friendsofgo/errors"
)

const (
	notAvailable      = "N/A"
	maxSampleMentions = 3
	ellipsis          = "..."
)

func severityColour(severity string) embeds.Colour {
	switch strings.ToLower(severity) {
	case "critical":
		return discord.ColorError
	case "warning":
		return discord.ColorWarning
	case "info":
		return discord.ColorInfo
	default:
		return discord.ColorError
	}
}

func statusColour(status string) embeds.Colour {
	switch strings.ToLower(status) {
	case "completed":
		return discord.ColorSuccess
	case "failed":
		return discord.ColorError
	default:
		return discord.ColorInfo
	}
}

// field fills empty values and truncates to the builder's field_value limit.
func (uc *implUseCase) field(name, value string, inline bool) embeds.Field {
	if value == "" {
		value = notAvailable
	}
	return embeds.Field{
		Name:   truncateText(name, uc.builder.Limits().FieldName),
		Value:  truncateText(value, uc.builder.Limits().FieldValue),
		Inline: inline,
	}
}

func (uc *implUseCase) title(s string) string {
	return truncateText(s, uc.builder.Limits().Title)
}

// dispatch builds the embed and sends it as a single-embed message.
func (uc *implUseCase) dispatch(ctx context.Context, kind string, opts embeds.Options) error {
	e, err := uc.builder.New(opts)
	if err != nil {
		uc.l.Errorf(ctx, "alert.usecase.%s.New: %v", kind, err)
		return errors.Wrap(alert.ErrInvalidInput, err.Error())
	}
	if err := e.Send(ctx, uc.discord, ""); err != nil {
		uc.l.Errorf(ctx, "alert.usecase.%s.Send: %v", kind, err)
		return errors.Wrap(alert.ErrDispatchFailed, err.Error())
	}
	return nil
}

func formatFloat(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// truncateText cuts s to max runes, ending with an ellipsis when cut.
func truncateText(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	if max < len(ellipsis) {
		return string(r[:max])
	}
	return string(r[:max-len(ellipsis)]) + ellipsis
}
