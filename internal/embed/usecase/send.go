package usecase

import (
	"context"
	"fmt"

	"smap-embeds/internal/embed"
	"smap-embeds/pkg/embeds"

	"github.com/friendsofgo/errors"
)

func (uc *implUseCase) Send(ctx context.Context, ip embed.SendInput) (embed.SendOutput, error) {
	if len(ip.Embeds) == 0 {
		return embed.SendOutput{}, embed.ErrNoEmbeds
	}

	b, err := uc.builderFor(ip.Limits)
	if err != nil {
		return embed.SendOutput{}, err
	}

	files := uc.newAttachments(uc.fetchFile)
	built := make([]*embeds.Embed, 0, len(ip.Embeds))
	for i, in := range ip.Embeds {
		opts, err := uc.toOptions(ctx, in, files.resolve)
		if err != nil {
			return embed.SendOutput{}, errors.Wrap(err, fmt.Sprintf("embed %d", i))
		}
		opts.SkipLimits = ip.SkipLimits

		e, err := b.New(opts)
		if err != nil {
			return embed.SendOutput{}, errors.Wrap(err, fmt.Sprintf("embed %d", i))
		}
		built = append(built, e)
	}

	msg, err := built[0].Message(ip.Content, built[1:]...)
	if err != nil {
		return embed.SendOutput{}, errors.Wrap(err, "message")
	}
	msg.Username = ip.Username
	msg.AvatarURL = ip.AvatarURL

	if err := uc.discord.Execute(ctx, msg); err != nil {
		uc.l.Errorf(ctx, "embed.usecase.Send.Execute: %v", err)
		return embed.SendOutput{}, errors.Wrap(embed.ErrDeliveryFailed, err.Error())
	}

	names := make([]string, 0, len(msg.Files))
	for _, f := range msg.Files {
		names = append(names, f.Name)
	}
	uc.l.Infof(ctx, "embed.usecase.Send: delivered %d embeds with %d files", len(msg.Embeds), len(names))

	return embed.SendOutput{Embeds: len(msg.Embeds), Files: names}, nil
}
