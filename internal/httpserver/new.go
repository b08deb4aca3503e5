package httpserver

import (
	"errors"

	"smap-embeds/pkg/discord"
	"smap-embeds/pkg/embeds"
	"smap-embeds/pkg/log"
	"smap-embeds/pkg/minio"

	"github.com/gin-gonic/gin"
)

// HTTPServer holds the wired dependencies. New only validates them; Run serves.
type HTTPServer struct {
	gin  *gin.Engine
	l    log.Logger
	host string
	port int

	builder *embeds.Builder
	discord discord.IDiscord
	storage minio.MinIO
}

type Config struct {
	Host string
	Port int
	Mode string

	// Builder is shared by every request; per-request overrides work on copies.
	Builder *embeds.Builder
	Discord discord.IDiscord
	// MinIO is optional.
	MinIO minio.MinIO
}

func New(l log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		gin:     gin.New(),
		l:       l,
		host:    cfg.Host,
		port:    cfg.Port,
		builder: cfg.Builder,
		discord: cfg.Discord,
		storage: cfg.MinIO,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.builder == nil {
		return errors.New("embed builder is required")
	}
	if srv.discord == nil {
		return errors.New("discord client is required")
	}
	return nil
}
