package discord

import "time"

// NewEmbed starts an empty rich embed. Setters return the receiver so calls chain.
func NewEmbed() *Embed {
	return &Embed{Type: EmbedTypeRich}
}

func (e *Embed) SetTitle(title string) *Embed {
	e.Title = title
	return e
}

func (e *Embed) SetDescription(description string) *Embed {
	e.Description = description
	return e
}

func (e *Embed) SetURL(url string) *Embed {
	e.URL = url
	return e
}

func (e *Embed) SetColor(color int) *Embed {
	e.Color = color
	return e
}

// SetTimestamp stores t in UTC; a zero t clears it.
func (e *Embed) SetTimestamp(t time.Time) *Embed {
	if t.IsZero() {
		e.Timestamp = ""
		return e
	}
	e.Timestamp = FormatTimestamp(t)
	return e
}

func (e *Embed) SetAuthor(name, url, iconURL string) *Embed {
	e.Author = &EmbedAuthor{Name: name, URL: url, IconURL: iconURL}
	return e
}

func (e *Embed) SetFooter(text, iconURL string) *Embed {
	e.Footer = &EmbedFooter{Text: text, IconURL: iconURL}
	return e
}

func (e *Embed) SetImage(url string) *Embed {
	e.Image = &EmbedImage{URL: url}
	return e
}

func (e *Embed) SetThumbnail(url string) *Embed {
	e.Thumbnail = &EmbedThumbnail{URL: url}
	return e
}

func (e *Embed) AddField(name, value string, inline bool) *Embed {
	e.Fields = append(e.Fields, EmbedField{Name: name, Value: value, Inline: inline})
	return e
}

// FormatTimestamp renders t the way Discord expects it.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
