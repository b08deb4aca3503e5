package embeds

import (
	"encoding/json"
	"fmt"
	"time"

	"smap-embeds/pkg/discord"
)

// Native converts to the webhook client's embed type.
func (e *Embed) Native() discord.Embed {
	out := discord.Embed{
		Title:       e.title,
		Type:        discord.EmbedTypeRich,
		Description: e.description,
		URL:         e.url,
		Color:       int(e.colour),
		Author:      e.author.native(),
		Footer:      e.footer.native(),
		Image:       e.image.image(),
		Thumbnail:   e.thumbnail.thumbnail(),
		Video:       e.video.video(),
	}
	if !e.timestamp.IsZero() {
		out.Timestamp = discord.FormatTimestamp(e.timestamp)
	}
	if !e.provider.IsZero() {
		out.Provider = &discord.EmbedProvider{Name: e.provider.Name, URL: e.provider.URL}
	}
	for _, f := range e.fields {
		out.Fields = append(out.Fields, f.native())
	}
	return out
}

// MarshalJSON writes the wire form. It does not re-validate.
func (e *Embed) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Native())
}

// FromNative wraps an embed received from Discord using the default limits.
func FromNative(n discord.Embed) (*Embed, error) {
	return NewBuilder(nil).FromNative(n)
}

// FromNative keeps server-assigned data (proxy URLs, sizes, video, provider) and skips validation.
func (b *Builder) FromNative(n discord.Embed) (*Embed, error) {
	e := &Embed{
		limits:      b.limits,
		checkLimits: true,
		checkURLs:   b.checkURLs,
		title:       n.Title,
		description: n.Description,
		url:         n.URL,
		colour:      Colour(n.Color),
	}
	if n.Timestamp != "" {
		ts, err := time.Parse(time.RFC3339, n.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("embeds: timestamp %q: %w", n.Timestamp, err)
		}
		e.timestamp = ts
	}
	if a := n.Author; a != nil {
		e.author = Author{Name: a.Name, URL: a.URL, Icon: Remote(a.IconURL), ProxyIconURL: a.ProxyIconURL}
	}
	if f := n.Footer; f != nil {
		e.footer = Footer{Text: f.Text, Icon: Remote(f.IconURL), ProxyIconURL: f.ProxyIconURL}
	}
	if i := n.Image; i != nil {
		e.image = Media{Kind: KindImage, Source: Remote(i.URL), ProxyURL: i.ProxyURL, Height: i.Height, Width: i.Width}
	}
	if t := n.Thumbnail; t != nil {
		e.thumbnail = Media{Kind: KindThumbnail, Source: Remote(t.URL), ProxyURL: t.ProxyURL, Height: t.Height, Width: t.Width}
	}
	if v := n.Video; v != nil {
		e.video = Media{Kind: KindVideo, Source: Remote(v.URL), ProxyURL: v.ProxyURL, Height: v.Height, Width: v.Width}
	}
	if p := n.Provider; p != nil {
		e.provider = Provider{Name: p.Name, URL: p.URL}
	}
	for _, f := range n.Fields {
		e.fields = append(e.fields, Field{Name: f.Name, Value: f.Value, Inline: f.Inline})
	}
	return e, nil
}
