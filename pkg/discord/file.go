package discord

import (
	"io"
	"path"
)

// NewFile wraps r as an upload named after the last element of name.
func NewFile(name string, r io.Reader) *File {
	return &File{Name: path.Base(name), Reader: r}
}

// AttachmentURL is the placeholder URL an embed uses to point at this upload.
func (f File) AttachmentURL() string {
	return attachmentScheme + f.Name
}

// IsAttachmentURL reports whether u points at an uploaded file.
func IsAttachmentURL(u string) bool {
	return len(u) > len(attachmentScheme) && u[:len(attachmentScheme)] == attachmentScheme
}
