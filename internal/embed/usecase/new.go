package usecase

import (
	"smap-embeds/internal/embed"
	"smap-embeds/pkg/discord"
	"smap-embeds/pkg/embeds"
	"smap-embeds/pkg/log"
	"smap-embeds/pkg/minio"
)

type implUseCase struct {
	l       log.Logger
	builder *embeds.Builder
	discord discord.IDiscord
	storage minio.MinIO
}

// New wires the usecase. storage may be nil when uploads are disabled.
func New(l log.Logger, builder *embeds.Builder, d discord.IDiscord, storage minio.MinIO) embed.UseCase {
	return &implUseCase{
		l:       l,
		builder: builder,
		discord: d,
		storage: storage,
	}
}
