package embeds

import (
	"unicode/utf8"

	"smap-embeds/pkg/discord"
)

const zeroWidthSpace = "\u200b"

type Field struct {
	Name   string
	Value  string
	Inline bool
}

// Len counts name and value together.
func (f Field) Len() int {
	return utf8.RuneCountInString(f.Name) + utf8.RuneCountInString(f.Value)
}

// normalized replaces an empty value, which Discord rejects, with a zero-width space.
func (f Field) normalized() Field {
	if f.Value == "" {
		f.Value = zeroWidthSpace
	}
	return f
}

func (f Field) native() discord.EmbedField {
	return discord.EmbedField{Name: f.Name, Value: f.Value, Inline: f.Inline}
}
