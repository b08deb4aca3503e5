// Package embeds builds Discord embeds in one call from loose inputs and checks
// them against Discord's size limits before anything is sent.
package embeds

import (
	"time"
)

// Options describes an embed. Author and Footer take a string, a User, an
// Author/Footer value or nil. Image and Thumbnail take a URL string, a
// *discord.File, a Ref, a Media value or nil. Colour takes an int, a Colour,
// a colour string or nil for DefaultColour.
type Options struct {
	Title       string
	Description string
	URL         string
	Colour      any
	Timestamp   time.Time
	Author      any
	Footer      any
	Image       any
	Thumbnail   any
	Fields      []Field

	// SkipLimits turns off limit checks for this embed and its later edits.
	SkipLimits bool
}

// Builder owns a Limits value shared by every embed it builds.
type Builder struct {
	limits    *Limits
	checkURLs bool
}

// NewBuilder uses DefaultLimits when limits is nil.
func NewBuilder(limits *Limits) *Builder {
	if limits == nil {
		limits = DefaultLimits()
	}
	return &Builder{limits: limits, checkURLs: true}
}

// New builds an embed with a private builder and the default limits.
func New(opts Options) (*Embed, error) {
	return NewBuilder(nil).New(opts)
}

// Limits is the live registry; edits apply to later validations only.
func (b *Builder) Limits() *Limits {
	return b.limits
}

// SetURLCheck toggles scheme checks on icon, media and link URLs.
func (b *Builder) SetURLCheck(enabled bool) *Builder {
	b.checkURLs = enabled
	return b
}

// WithLimits returns a builder over a copy of the limits with overrides applied.
func (b *Builder) WithLimits(overrides map[string]int) (*Builder, error) {
	limits := b.limits.Clone()
	if err := limits.Edit(overrides); err != nil {
		return nil, err
	}
	return &Builder{limits: limits, checkURLs: b.checkURLs}, nil
}

func (b *Builder) New(opts Options) (*Embed, error) {
	e := &Embed{
		limits:      b.limits,
		checkURLs:   b.checkURLs,
		checkLimits: !opts.SkipLimits,
	}

	colour, err := normalizeColour(opts.Colour)
	if err != nil {
		return nil, err
	}
	author, err := e.normalizeAuthor(opts.Author)
	if err != nil {
		return nil, err
	}
	footer, err := e.normalizeFooter(opts.Footer)
	if err != nil {
		return nil, err
	}
	image, err := e.normalizeMedia(KindImage, opts.Image)
	if err != nil {
		return nil, err
	}
	thumbnail, err := e.normalizeMedia(KindThumbnail, opts.Thumbnail)
	if err != nil {
		return nil, err
	}
	if err := e.checkLink("url", opts.URL); err != nil {
		return nil, err
	}

	e.colour = colour
	e.author = author
	e.footer = footer
	e.image = image
	e.thumbnail = thumbnail
	e.title = opts.Title
	e.description = opts.Description
	e.url = opts.URL
	e.timestamp = opts.Timestamp
	for _, f := range opts.Fields {
		e.fields = append(e.fields, f.normalized())
	}

	if err := e.check(); err != nil {
		return nil, err
	}
	return e, nil
}
