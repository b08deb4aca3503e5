package embeds

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownLimit  = errors.New("embeds: unknown limit")
	ErrNegativeLimit = errors.New("embeds: limit must not be negative")
	ErrInvalidURL    = errors.New("embeds: invalid URL")
	ErrInvalidColour = errors.New("embeds: invalid colour")
	ErrMissingText   = errors.New("embeds: name or text is required")
	ErrFieldIndex    = errors.New("embeds: field index out of range")
	ErrNoImages      = errors.New("embeds: at least one image is required")
	ErrGalleryURL    = errors.New("embeds: multiple images need the embed URL set")
	ErrMediaKind     = errors.New("embeds: unsupported media kind")
	ErrNoSender      = errors.New("embeds: sender is required")
	ErrDuplicateFile = errors.New("embeds: different uploads share a file name")
)

// LimitError reports a text or count that went past its configured limit.
type LimitError struct {
	Field  string
	Limit  int
	Length int
	// Index is the field position for field_name and field_value, -1 otherwise.
	Index int
}

func newLimitError(field string, limit, length int) *LimitError {
	return &LimitError{Field: field, Limit: limit, Length: length, Index: -1}
}

func (e *LimitError) Over() int {
	return e.Length - e.Limit
}

func (e *LimitError) Error() string {
	where := e.Field
	if e.Index >= 0 {
		where = fmt.Sprintf("%s at index %d", e.Field, e.Index)
	}
	unit := "characters"
	switch e.Field {
	case LimitFields, LimitEmbeds:
		unit = e.Field
	}
	return fmt.Sprintf("embeds: %s exceeds the limit of %d %s (got %d, %d over)", where, e.Limit, unit, e.Length, e.Over())
}

// ConflictError means a slot got both a remote URL and an uploaded file.
type ConflictError struct {
	Slot string
}

func (e *ConflictError) Error() string {
	if e.Slot == "" {
		return "embeds: both a URL and an uploaded file were given"
	}
	return fmt.Sprintf("embeds: %s: both a URL and an uploaded file were given", e.Slot)
}

// TypeError means a slot got a value shape it cannot normalize.
type TypeError struct {
	Slot string
	Got  string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("embeds: %s: unsupported value of type %s", e.Slot, e.Got)
}

func typeError(slot string, v any) *TypeError {
	return &TypeError{Slot: slot, Got: fmt.Sprintf("%T", v)}
}
