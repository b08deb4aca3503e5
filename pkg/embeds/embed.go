package embeds

import (
	"fmt"
	"time"
)

// Embed is a validated embed. Mutators validate the result and leave the embed
// untouched when they fail.
type Embed struct {
	limits      *Limits
	checkLimits bool
	checkURLs   bool

	title       string
	description string
	url         string
	colour      Colour
	timestamp   time.Time
	author      Author
	footer      Footer
	image       Media
	thumbnail   Media
	video       Media
	provider    Provider
	fields      []Field
}

func (e *Embed) Title() string        { return e.title }
func (e *Embed) Description() string  { return e.description }
func (e *Embed) URL() string          { return e.url }
func (e *Embed) Colour() Colour       { return e.colour }
func (e *Embed) Timestamp() time.Time { return e.timestamp }
func (e *Embed) Author() Author       { return e.author }
func (e *Embed) Footer() Footer       { return e.footer }
func (e *Embed) Image() Media         { return e.image }
func (e *Embed) Thumbnail() Media     { return e.thumbnail }
func (e *Embed) Video() Media         { return e.video }
func (e *Embed) Provider() Provider   { return e.provider }
func (e *Embed) Limits() *Limits      { return e.limits }

// Fields returns a copy.
func (e *Embed) Fields() []Field {
	return append([]Field(nil), e.fields...)
}

func (e *Embed) String() string { return e.title }

// IsEmpty reports whether nothing would render.
func (e *Embed) IsEmpty() bool {
	return e.title == "" && e.description == "" && e.url == "" && e.colour == 0 &&
		e.timestamp.IsZero() && e.author.IsZero() && e.footer.IsZero() &&
		len(e.fields) == 0 && e.image.IsZero() && e.thumbnail.IsZero() &&
		e.video.IsZero() && e.provider.IsZero()
}

func (e *Embed) Clone() *Embed {
	c := *e
	c.fields = append([]Field(nil), e.fields...)
	return &c
}

// update runs fn on a clone and keeps the result only if what fn changed validates.
func (e *Embed) update(fn func(next *Embed) error) error {
	next := e.Clone()
	if err := fn(next); err != nil {
		return err
	}
	if err := next.checkSince(e); err != nil {
		return err
	}
	*e = *next
	return nil
}

func (e *Embed) SetTitle(title string) error {
	return e.update(func(n *Embed) error {
		n.title = title
		return nil
	})
}

func (e *Embed) SetDescription(description string) error {
	return e.update(func(n *Embed) error {
		n.description = description
		return nil
	})
}

func (e *Embed) SetURL(url string) error {
	return e.update(func(n *Embed) error {
		if err := n.checkLink("url", url); err != nil {
			return err
		}
		n.url = url
		return nil
	})
}

// SetColour accepts the same shapes as Options.Colour.
func (e *Embed) SetColour(colour any) error {
	c, err := normalizeColour(colour)
	if err != nil {
		return err
	}
	e.colour = c
	return nil
}

// SetTimestamp sets the footer time; the zero time clears it.
func (e *Embed) SetTimestamp(t time.Time) {
	e.timestamp = t
}

// SetAuthor accepts the same shapes as Options.Author; nil removes the author.
func (e *Embed) SetAuthor(author any) error {
	return e.update(func(n *Embed) error {
		a, err := n.normalizeAuthor(author)
		n.author = a
		return err
	})
}

func (e *Embed) SetFooter(footer any) error {
	return e.update(func(n *Embed) error {
		f, err := n.normalizeFooter(footer)
		n.footer = f
		return err
	})
}

func (e *Embed) SetImage(image any) error {
	m, err := e.normalizeMedia(KindImage, image)
	if err != nil {
		return err
	}
	e.image = m
	return nil
}

func (e *Embed) SetThumbnail(thumbnail any) error {
	m, err := e.normalizeMedia(KindThumbnail, thumbnail)
	if err != nil {
		return err
	}
	e.thumbnail = m
	return nil
}

func (e *Embed) AddField(name, value string, inline bool) error {
	return e.AddFields(Field{Name: name, Value: value, Inline: inline})
}

func (e *Embed) AddFields(fields ...Field) error {
	return e.update(func(n *Embed) error {
		for _, f := range fields {
			n.fields = append(n.fields, f.normalized())
		}
		return nil
	})
}

// InsertField places f at index; an index past the end appends.
func (e *Embed) InsertField(index int, f Field) error {
	if index < 0 {
		return fmt.Errorf("%w: %d", ErrFieldIndex, index)
	}
	return e.update(func(n *Embed) error {
		if index >= len(n.fields) {
			n.fields = append(n.fields, f.normalized())
			return nil
		}
		n.fields = append(n.fields, Field{})
		copy(n.fields[index+1:], n.fields[index:])
		n.fields[index] = f.normalized()
		return nil
	})
}

// EditField lets fn change the field at index.
func (e *Embed) EditField(index int, fn func(f *Field)) error {
	if index < 0 || index >= len(e.fields) {
		return fmt.Errorf("%w: %d", ErrFieldIndex, index)
	}
	return e.update(func(n *Embed) error {
		f := n.fields[index]
		fn(&f)
		n.fields[index] = f.normalized()
		return nil
	})
}

// RemoveField ignores an index out of range.
func (e *Embed) RemoveField(index int) {
	if index < 0 || index >= len(e.fields) {
		return
	}
	e.fields = append(e.fields[:index:index], e.fields[index+1:]...)
}

func (e *Embed) ClearFields() {
	e.fields = nil
}

// Medias lists image, thumbnail, video, footer icon and author icon, skipping absent ones.
func (e *Embed) Medias() []Media {
	var out []Media
	for _, m := range []Media{e.image, e.thumbnail, e.video} {
		if !m.IsZero() {
			out = append(out, m)
		}
	}
	if m, ok := e.footer.media(); ok {
		out = append(out, m)
	}
	if m, ok := e.author.media(); ok {
		out = append(out, m)
	}
	return out
}
