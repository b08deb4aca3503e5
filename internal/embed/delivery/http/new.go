package http

import (
	"smap-embeds/internal/embed"
	"smap-embeds/pkg/discord"
	"smap-embeds/pkg/log"
)

type Handler struct {
	l       log.Logger
	uc      embed.UseCase
	discord discord.IDiscord
}

// New builds the handler. d receives reports for unexpected errors and may be nil.
func New(l log.Logger, uc embed.UseCase, d discord.IDiscord) *Handler {
	return &Handler{
		l:       l,
		uc:      uc,
		discord: d,
	}
}
