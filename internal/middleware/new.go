package middleware

import (
	"smap-embeds/pkg/discord"
	"smap-embeds/pkg/log"
)

type Middleware struct {
	l       log.Logger
	discord discord.IDiscord
}

// New builds the middleware set. d may be nil; panics are then only logged.
func New(l log.Logger, d discord.IDiscord) Middleware {
	return Middleware{
		l:       l,
		discord: d,
	}
}
