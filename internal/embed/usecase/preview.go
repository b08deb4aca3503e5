package usecase

import (
	"context"

	"smap-embeds/internal/embed"
	"smap-embeds/pkg/embeds"

	"github.com/friendsofgo/errors"
)

func (uc *implUseCase) Preview(ctx context.Context, ip embed.PreviewInput) (embed.PreviewOutput, error) {
	b, err := uc.builderFor(ip.Limits)
	if err != nil {
		return embed.PreviewOutput{}, err
	}

	opts, err := uc.toOptions(ctx, ip.Embed, uc.newAttachments(uc.statFile).resolve)
	if err != nil {
		return embed.PreviewOutput{}, err
	}
	opts.SkipLimits = ip.SkipLimits

	e, err := b.New(opts)
	if err != nil {
		uc.l.Debugf(ctx, "embed.usecase.Preview.New: %v", err)
		return embed.PreviewOutput{}, errors.Wrap(err, "preview")
	}

	return embed.PreviewOutput{
		Embed:  e.Native(),
		Length: e.Len(),
		Files:  fileNames(e.Files()),
	}, nil
}

func (uc *implUseCase) Limits(ctx context.Context) *embeds.Limits {
	return uc.builder.Limits().Clone()
}
