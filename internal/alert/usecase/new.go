package usecase

import (
	"time"

	"smap-embeds/internal/alert"
	"smap-embeds/pkg/discord"
	"smap-embeds/pkg/embeds"
	"smap-embeds/pkg/log"
)

type implUseCase struct {
	l       log.Logger
	builder *embeds.Builder
	discord discord.IDiscord
	now     func() time.Time
}

func New(l log.Logger, builder *embeds.Builder, d discord.IDiscord) alert.UseCase {
	return &implUseCase{
		l:       l,
		builder: builder,
		discord: d,
		now:     time.Now,
	}
}
