package embeds

import "smap-embeds/pkg/discord"

// Ref points an icon or media slot at either a remote URL or an uploaded file.
// The zero Ref is absent.
type Ref struct {
	url  string
	file *discord.File
}

func Remote(url string) Ref {
	return Ref{url: url}
}

func Uploaded(f *discord.File) Ref {
	return Ref{file: f}
}

// NewRef accepts the loose url/file pair; at most one may be set.
func NewRef(url string, file *discord.File) (Ref, error) {
	return newRef("", url, file)
}

func newRef(slot, url string, file *discord.File) (Ref, error) {
	if url != "" && file != nil {
		return Ref{}, &ConflictError{Slot: slot}
	}
	if file != nil {
		return Uploaded(file), nil
	}
	return Remote(url), nil
}

// URL is the remote URL, or attachment://name for uploads.
func (r Ref) URL() string {
	if r.file != nil {
		return r.file.AttachmentURL()
	}
	return r.url
}

func (r Ref) File() *discord.File { return r.file }

func (r Ref) IsRemote() bool { return r.url != "" }

func (r Ref) IsUploaded() bool { return r.file != nil }

func (r Ref) IsZero() bool { return r.url == "" && r.file == nil }
