package embeds

import (
	"unicode/utf8"

	"smap-embeds/pkg/discord"
)

type Footer struct {
	Text string
	Icon Ref

	ProxyIconURL string
}

func NewFooter(text, iconURL string, iconFile *discord.File) (Footer, error) {
	icon, err := newRef("footer icon", iconURL, iconFile)
	if err != nil {
		return Footer{}, err
	}
	return Footer{Text: text, Icon: icon}, nil
}

// FooterFromUser maps the display name to Text and the avatar to Icon.
func FooterFromUser(u User) Footer {
	return Footer{Text: u.DisplayName(), Icon: Remote(u.AvatarURL())}
}

func (f Footer) IsZero() bool {
	return f.Text == "" && f.Icon.IsZero()
}

func (f Footer) Len() int {
	return utf8.RuneCountInString(f.Text)
}

func (f Footer) media() (Media, bool) {
	if f.Icon.IsZero() {
		return Media{}, false
	}
	return Media{Kind: KindFooterIcon, Source: f.Icon, ProxyURL: f.ProxyIconURL}, true
}

func (f Footer) native() *discord.EmbedFooter {
	if f.IsZero() {
		return nil
	}
	return &discord.EmbedFooter{Text: f.Text, IconURL: f.Icon.URL(), ProxyIconURL: f.ProxyIconURL}
}
