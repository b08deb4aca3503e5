package minio

import (
	"context"
	"fmt"
	"time"

	"smap-embeds/config"
	miniopkg "smap-embeds/pkg/minio"
	"smap-embeds/pkg/log"
)

const (
	// defaultConnectTimeout bounds each connection attempt.
	defaultConnectTimeout = 5 * time.Second
	defaultMaxRetries     = 3
)

// Connect builds a MinIO client and verifies it with retries. It returns nil
// without error when MinIO is disabled.
func Connect(ctx context.Context, l log.Logger, cfg config.MinIOConfig) (miniopkg.MinIO, error) {
	if !cfg.Enabled {
		l.Infof(ctx, "config.minio.Connect: disabled, uploaded file references will be rejected")
		return nil, nil
	}

	client, err := miniopkg.New(l, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	connectCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout*defaultMaxRetries*2)
	defer cancel()

	l.Infof(ctx, "config.minio.Connect: connecting to %s (SSL: %v, Region: %s)", cfg.Endpoint, cfg.UseSSL, cfg.Region)
	if err := client.ConnectWithRetry(connectCtx, defaultMaxRetries); err != nil {
		return nil, err
	}

	l.Infof(ctx, "config.minio.Connect: connected to %s", cfg.Endpoint)
	return client, nil
}
