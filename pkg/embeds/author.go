package embeds

import (
	"unicode/utf8"

	"smap-embeds/pkg/discord"
)

type Author struct {
	Name string
	URL  string
	Icon Ref

	// ProxyIconURL is assigned by Discord and only set by FromNative.
	ProxyIconURL string
}

// NewAuthor fails with *ConflictError when both iconURL and iconFile are given.
func NewAuthor(name, url, iconURL string, iconFile *discord.File) (Author, error) {
	icon, err := newRef("author icon", iconURL, iconFile)
	if err != nil {
		return Author{}, err
	}
	return Author{Name: name, URL: url, Icon: icon}, nil
}

// AuthorFromUser maps the display name to Name and the avatar to Icon.
func AuthorFromUser(u User) Author {
	return Author{Name: u.DisplayName(), Icon: Remote(u.AvatarURL())}
}

func (a Author) IsZero() bool {
	return a.Name == "" && a.URL == "" && a.Icon.IsZero()
}

func (a Author) Len() int {
	return utf8.RuneCountInString(a.Name)
}

func (a Author) media() (Media, bool) {
	if a.Icon.IsZero() {
		return Media{}, false
	}
	return Media{Kind: KindAuthorIcon, Source: a.Icon, ProxyURL: a.ProxyIconURL}, true
}

func (a Author) native() *discord.EmbedAuthor {
	if a.IsZero() {
		return nil
	}
	return &discord.EmbedAuthor{Name: a.Name, URL: a.URL, IconURL: a.Icon.URL(), ProxyIconURL: a.ProxyIconURL}
}
