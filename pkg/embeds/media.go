package embeds

import "smap-embeds/pkg/discord"

type MediaKind string

const (
	KindImage      MediaKind = "image"
	KindVideo      MediaKind = "video"
	KindThumbnail  MediaKind = "thumbnail"
	KindFooterIcon MediaKind = "footer_icon"
	KindAuthorIcon MediaKind = "author_icon"
)

// Media is an image, thumbnail, video or icon. It has no length limit.
type Media struct {
	Kind   MediaKind
	Source Ref

	// Set by Discord.
	ProxyURL string
	Height   int
	Width    int
}

// NewMedia fails with *ConflictError when both url and file are given.
func NewMedia(kind MediaKind, url string, file *discord.File) (Media, error) {
	src, err := newRef(string(kind), url, file)
	if err != nil {
		return Media{}, err
	}
	return Media{Kind: kind, Source: src}, nil
}

func (m Media) URL() string { return m.Source.URL() }

func (m Media) File() *discord.File { return m.Source.File() }

func (m Media) IsZero() bool { return m.Source.IsZero() }

func (m Media) image() *discord.EmbedImage {
	if m.IsZero() {
		return nil
	}
	return &discord.EmbedImage{URL: m.URL(), ProxyURL: m.ProxyURL, Height: m.Height, Width: m.Width}
}

func (m Media) thumbnail() *discord.EmbedThumbnail {
	if m.IsZero() {
		return nil
	}
	return &discord.EmbedThumbnail{URL: m.URL(), ProxyURL: m.ProxyURL, Height: m.Height, Width: m.Width}
}

func (m Media) video() *discord.EmbedVideo {
	if m.IsZero() {
		return nil
	}
	return &discord.EmbedVideo{URL: m.URL(), ProxyURL: m.ProxyURL, Height: m.Height, Width: m.Width}
}

// Provider is the site credited on link embeds; Discord fills it in.
type Provider struct {
	Name string
	URL  string
}

func (p Provider) IsZero() bool { return p.Name == "" && p.URL == "" }
