package embeds

import "fmt"

// WithMultipleImages builds one embed per image. The first carries opts; the
// rest are clones that only swap the image, so Discord groups them as a gallery
// under the shared URL. kind must be KindImage or KindThumbnail.
func (b *Builder) WithMultipleImages(kind MediaKind, opts Options, images ...any) ([]*Embed, error) {
	if kind != KindImage && kind != KindThumbnail {
		return nil, fmt.Errorf("%w: %q", ErrMediaKind, kind)
	}
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	if opts.URL == "" {
		return nil, ErrGalleryURL
	}

	if kind == KindImage {
		opts.Image = images[0]
	} else {
		opts.Thumbnail = images[0]
	}
	first, err := b.New(opts)
	if err != nil {
		return nil, err
	}

	out := []*Embed{first}
	for _, img := range images[1:] {
		e := first.Clone()
		if kind == KindImage {
			err = e.SetImage(img)
		} else {
			err = e.SetThumbnail(img)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
