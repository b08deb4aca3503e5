package embed

import (
	"time"

	"smap-embeds/pkg/discord"
)

// ObjectRef names an uploaded file in object storage. An empty Bucket means the configured one.
type ObjectRef struct {
	Bucket string
	Object string
}

// MediaInput is a remote URL or a stored object; setting both is a conflict.
type MediaInput struct {
	URL    string
	Object *ObjectRef
}

type AuthorInput struct {
	Name string
	URL  string
	Icon MediaInput
}

type FooterInput struct {
	Text string
	Icon MediaInput
}

type FieldInput struct {
	Name   string
	Value  string
	Inline bool
}

type EmbedInput struct {
	Title       string
	Description string
	URL         string
	// Colour is nil for the default, or an int or string accepted by embeds.ParseColour.
	Colour    any
	Timestamp time.Time
	Author    *AuthorInput
	Footer    *FooterInput
	Image     *MediaInput
	Thumbnail *MediaInput
	Fields    []FieldInput
}

type PreviewInput struct {
	Embed      EmbedInput
	Limits     map[string]int
	SkipLimits bool
}

type PreviewOutput struct {
	Embed  discord.Embed
	Length int
	Files  []string
}

type SendInput struct {
	Content    string
	Username   string
	AvatarURL  string
	Embeds     []EmbedInput
	Limits     map[string]int
	SkipLimits bool
}

type SendOutput struct {
	Embeds int
	Files  []string
}
