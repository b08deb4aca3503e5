package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smap-embeds/config"
	"smap-embeds/config/minio"
	"smap-embeds/internal/httpserver"
	"smap-embeds/pkg/discord"
	"smap-embeds/pkg/embeds"
	"smap-embeds/pkg/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Embed limits
	limits := embeds.DefaultLimits()
	if err := limits.Edit(cfg.Embed.LimitOverrides()); err != nil {
		logger.Fatalf(ctx, "Invalid embed limits: %v", err)
	}
	builder := embeds.NewBuilder(limits).SetURLCheck(cfg.Embed.CheckURLs)

	// Discord
	discordClient, err := discord.NewWithConfig(logger, cfg.Discord.WebhookURL, discord.Config{
		Timeout:          cfg.Discord.Timeout,
		RetryCount:       cfg.Discord.RetryCount,
		RetryDelay:       cfg.Discord.RetryDelay,
		DefaultUsername:  cfg.Discord.Username,
		DefaultAvatarURL: cfg.Discord.AvatarURL,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Discord: %v", err)
	}
	defer discordClient.Close()

	// MinIO (optional)
	minioClient, err := minio.Connect(ctx, logger, cfg.MinIO)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to MinIO: %v", err)
	}
	if minioClient != nil {
		defer minioClient.Close()
	}

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Host:    cfg.Server.Host,
		Port:    cfg.Server.Port,
		Mode:    cfg.Server.Mode,
		Builder: builder,
		Discord: discordClient,
		MinIO:   minioClient,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize HTTP server: %v", err)
	}

	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "Shutdown complete")
}
