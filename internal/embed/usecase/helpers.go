package usecase

import (
	"context"
	"fmt"
	"path"

	"smap-embeds/internal/embed"
	"smap-embeds/pkg/discord"
	"smap-embeds/pkg/embeds"
	"smap-embeds/pkg/minio"

	"github.com/friendsofgo/errors"
)

// resolveFunc turns a stored object into an attachment.
type resolveFunc func(ctx context.Context, ref embed.ObjectRef) (*discord.File, error)

// builderFor returns the shared builder, or a copy with overrides applied.
func (uc *implUseCase) builderFor(overrides map[string]int) (*embeds.Builder, error) {
	if len(overrides) == 0 {
		return uc.builder, nil
	}
	b, err := uc.builder.WithLimits(overrides)
	if err != nil {
		return nil, errors.Wrap(err, "limits")
	}
	return b, nil
}

func (uc *implUseCase) toOptions(ctx context.Context, in embed.EmbedInput, resolve resolveFunc) (embeds.Options, error) {
	opts := embeds.Options{
		Title:       in.Title,
		Description: in.Description,
		URL:         in.URL,
		Colour:      in.Colour,
		Timestamp:   in.Timestamp,
	}

	if a := in.Author; a != nil {
		icon, err := uc.toRef(ctx, "author icon", a.Icon, resolve)
		if err != nil {
			return embeds.Options{}, err
		}
		opts.Author = embeds.Author{Name: a.Name, URL: a.URL, Icon: icon}
	}

	if f := in.Footer; f != nil {
		icon, err := uc.toRef(ctx, "footer icon", f.Icon, resolve)
		if err != nil {
			return embeds.Options{}, err
		}
		opts.Footer = embeds.Footer{Text: f.Text, Icon: icon}
	}

	if m := in.Image; m != nil {
		ref, err := uc.toRef(ctx, string(embeds.KindImage), *m, resolve)
		if err != nil {
			return embeds.Options{}, err
		}
		opts.Image = ref
	}

	if m := in.Thumbnail; m != nil {
		ref, err := uc.toRef(ctx, string(embeds.KindThumbnail), *m, resolve)
		if err != nil {
			return embeds.Options{}, err
		}
		opts.Thumbnail = ref
	}

	for _, f := range in.Fields {
		opts.Fields = append(opts.Fields, embeds.Field{Name: f.Name, Value: f.Value, Inline: f.Inline})
	}
	return opts, nil
}

func (uc *implUseCase) toRef(ctx context.Context, slot string, m embed.MediaInput, resolve resolveFunc) (embeds.Ref, error) {
	if m.Object == nil {
		return embeds.Remote(m.URL), nil
	}
	if m.URL != "" {
		return embeds.Ref{}, &embeds.ConflictError{Slot: slot}
	}
	f, err := resolve(ctx, *m.Object)
	if err != nil {
		return embeds.Ref{}, err
	}
	return embeds.Uploaded(f), nil
}

// statFile checks the object exists; previews never download content.
func (uc *implUseCase) statFile(ctx context.Context, ref embed.ObjectRef) (*discord.File, error) {
	if uc.storage == nil {
		return nil, embed.ErrStorageDisabled
	}
	bucket := uc.bucket(ref)
	exists, err := uc.storage.FileExists(ctx, bucket, ref.Object)
	if err != nil {
		return nil, uc.storageError(ctx, err)
	}
	if !exists {
		return nil, errors.Wrap(embed.ErrObjectNotFound, path.Join(bucket, ref.Object))
	}
	return discord.NewFile(ref.Object, nil), nil
}

func (uc *implUseCase) fetchFile(ctx context.Context, ref embed.ObjectRef) (*discord.File, error) {
	if uc.storage == nil {
		return nil, embed.ErrStorageDisabled
	}
	f, err := uc.storage.GetFile(ctx, uc.bucket(ref), ref.Object)
	if err != nil {
		return nil, uc.storageError(ctx, err)
	}
	return f, nil
}

// attachments resolves each stored object once per message and keeps
// attachment names unique, so a/logo.png and b/logo.png both survive.
type attachments struct {
	uc    *implUseCase
	load  resolveFunc
	byKey map[string]*discord.File
	names map[string]bool
}

func (uc *implUseCase) newAttachments(load resolveFunc) *attachments {
	return &attachments{
		uc:    uc,
		load:  load,
		byKey: make(map[string]*discord.File),
		names: make(map[string]bool),
	}
}

func (a *attachments) resolve(ctx context.Context, ref embed.ObjectRef) (*discord.File, error) {
	if a.uc.storage == nil {
		return nil, embed.ErrStorageDisabled
	}
	ref.Bucket = a.uc.bucket(ref)
	key := path.Join(ref.Bucket, ref.Object)
	if f, ok := a.byKey[key]; ok {
		return f, nil
	}

	f, err := a.load(ctx, ref)
	if err != nil {
		return nil, err
	}
	f.Name = a.uniqueName(f.Name)
	a.byKey[key] = f
	return f, nil
}

func (a *attachments) uniqueName(name string) string {
	unique := name
	for n := 1; a.names[unique]; n++ {
		unique = fmt.Sprintf("%d_%s", n, name)
	}
	a.names[unique] = true
	return unique
}

func (uc *implUseCase) bucket(ref embed.ObjectRef) string {
	if ref.Bucket != "" {
		return ref.Bucket
	}
	return uc.storage.DefaultBucket()
}

func (uc *implUseCase) storageError(ctx context.Context, err error) error {
	var se *minio.StorageError
	if errors.As(err, &se) {
		switch se.Code {
		case minio.ErrCodeObjectNotFound, minio.ErrCodeBucketNotFound:
			return errors.Wrap(embed.ErrObjectNotFound, se.Message)
		case minio.ErrCodeTooLarge:
			return errors.Wrap(embed.ErrFileTooLarge, se.Message)
		case minio.ErrCodeInvalidInput:
			return errors.Wrap(embed.ErrInvalidObject, se.Message)
		case minio.ErrCodePermission:
			uc.l.Warnf(ctx, "embed.usecase.storage: %v", err)
			return errors.Wrap(embed.ErrObjectForbidden, se.Message)
		}
	}
	uc.l.Errorf(ctx, "embed.usecase.storage: %v", err)
	return errors.Wrap(err, "storage")
}

func fileNames(files []discord.File) []string {
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}
	return names
}
