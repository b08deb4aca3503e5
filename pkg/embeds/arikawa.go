package embeds

import (
	adiscord "github.com/diamondburned/arikawa/v3/discord"
)

type arikawaUser struct{ u adiscord.User }

func (a arikawaUser) DisplayName() string { return a.u.Username }
func (a arikawaUser) AvatarURL() string   { return a.u.AvatarURL() }

type arikawaMember struct{ m adiscord.Member }

// DisplayName prefers the guild nickname.
func (a arikawaMember) DisplayName() string {
	if a.m.Nick != "" {
		return a.m.Nick
	}
	return a.m.User.Username
}

func (a arikawaMember) AvatarURL() string { return a.m.User.AvatarURL() }

// ArikawaUser adapts an arikawa user for AuthorFromUser and FooterFromUser.
func ArikawaUser(u adiscord.User) User { return arikawaUser{u} }

func ArikawaMember(m adiscord.Member) User { return arikawaMember{m} }

// Arikawa converts to arikawa's embed type for bots built on its gateway client.
func (e *Embed) Arikawa() adiscord.Embed {
	out := adiscord.Embed{
		Title:       e.title,
		Type:        adiscord.NormalEmbed,
		Description: e.description,
		URL:         adiscord.URL(e.url),
		Color:       adiscord.Color(e.colour),
	}
	if !e.timestamp.IsZero() {
		out.Timestamp = adiscord.NewTimestamp(e.timestamp.UTC())
	}
	if a := e.author; !a.IsZero() {
		out.Author = &adiscord.EmbedAuthor{
			Name:      a.Name,
			URL:       adiscord.URL(a.URL),
			Icon:      adiscord.URL(a.Icon.URL()),
			ProxyIcon: adiscord.URL(a.ProxyIconURL),
		}
	}
	if f := e.footer; !f.IsZero() {
		out.Footer = &adiscord.EmbedFooter{
			Text:      f.Text,
			Icon:      adiscord.URL(f.Icon.URL()),
			ProxyIcon: adiscord.URL(f.ProxyIconURL),
		}
	}
	if m := e.image; !m.IsZero() {
		out.Image = &adiscord.EmbedImage{
			URL:    adiscord.URL(m.URL()),
			Proxy:  adiscord.URL(m.ProxyURL),
			Height: uint(m.Height),
			Width:  uint(m.Width),
		}
	}
	if m := e.thumbnail; !m.IsZero() {
		out.Thumbnail = &adiscord.EmbedThumbnail{
			URL:    adiscord.URL(m.URL()),
			Proxy:  adiscord.URL(m.ProxyURL),
			Height: uint(m.Height),
			Width:  uint(m.Width),
		}
	}
	if m := e.video; !m.IsZero() {
		out.Video = &adiscord.EmbedVideo{URL: adiscord.URL(m.URL())}
	}
	if p := e.provider; !p.IsZero() {
		out.Provider = &adiscord.EmbedProvider{Name: p.Name, URL: adiscord.URL(p.URL)}
	}
	for _, f := range e.fields {
		out.Fields = append(out.Fields, adiscord.EmbedField{Name: f.Name, Value: f.Value, Inline: f.Inline})
	}
	return out
}
