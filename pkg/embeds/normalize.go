package embeds

import (
	"fmt"
	"net/url"

	"smap-embeds/pkg/discord"
)

func (e *Embed) normalizeAuthor(v any) (Author, error) {
	var a Author
	switch x := v.(type) {
	case nil:
		return Author{}, nil
	case string:
		a = Author{Name: x}
	case Author:
		a = x
	case *Author:
		if x == nil {
			return Author{}, nil
		}
		a = *x
	case User:
		a = AuthorFromUser(x)
	default:
		return Author{}, typeError("author", v)
	}
	if a.IsZero() {
		return Author{}, nil
	}
	if a.Name == "" {
		return Author{}, fmt.Errorf("author: %w", ErrMissingText)
	}
	if err := e.checkLink("author url", a.URL); err != nil {
		return Author{}, err
	}
	if err := e.checkRef("author icon", a.Icon); err != nil {
		return Author{}, err
	}
	return a, nil
}

func (e *Embed) normalizeFooter(v any) (Footer, error) {
	var f Footer
	switch x := v.(type) {
	case nil:
		return Footer{}, nil
	case string:
		f = Footer{Text: x}
	case Footer:
		f = x
	case *Footer:
		if x == nil {
			return Footer{}, nil
		}
		f = *x
	case User:
		f = FooterFromUser(x)
	default:
		return Footer{}, typeError("footer", v)
	}
	if f.IsZero() {
		return Footer{}, nil
	}
	if f.Text == "" {
		return Footer{}, fmt.Errorf("footer: %w", ErrMissingText)
	}
	if err := e.checkRef("footer icon", f.Icon); err != nil {
		return Footer{}, err
	}
	return f, nil
}

func (e *Embed) normalizeMedia(kind MediaKind, v any) (Media, error) {
	var m Media
	switch x := v.(type) {
	case nil:
		return Media{}, nil
	case string:
		m = Media{Source: Remote(x)}
	case *discord.File:
		m = Media{Source: Uploaded(x)}
	case discord.File:
		m = Media{Source: Uploaded(&x)}
	case Ref:
		m = Media{Source: x}
	case Media:
		m = x
	case *Media:
		if x == nil {
			return Media{}, nil
		}
		m = *x
	default:
		return Media{}, typeError(string(kind), v)
	}
	if m.IsZero() {
		return Media{}, nil
	}
	m.Kind = kind
	if err := e.checkRef(string(kind), m.Source); err != nil {
		return Media{}, err
	}
	return m, nil
}

func (e *Embed) checkRef(slot string, r Ref) error {
	if r.IsUploaded() {
		if r.File().Name == "" {
			return fmt.Errorf("%s: %w: uploaded file has no name", slot, ErrInvalidURL)
		}
		return nil
	}
	if !r.IsRemote() || !e.checkURLs {
		return nil
	}
	if discord.IsAttachmentURL(r.URL()) {
		return nil
	}
	return checkHTTP(slot, r.URL())
}

// checkLink validates URLs that must be real web links.
func (e *Embed) checkLink(slot, u string) error {
	if u == "" || !e.checkURLs {
		return nil
	}
	return checkHTTP(slot, u)
}

func checkHTTP(slot, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s: %w: %q", slot, ErrInvalidURL, raw)
	}
	return nil
}
