package http

import (
	"smap-embeds/internal/alert"
	"smap-embeds/pkg/discord"
	"smap-embeds/pkg/log"
)

type Handler struct {
	l       log.Logger
	uc      alert.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc alert.UseCase, d discord.IDiscord) *Handler {
	return &Handler{
		l:       l,
		uc:      uc,
		discord: d,
	}
}
