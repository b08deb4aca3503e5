package minio

import (
	"context"
	"net/http"
	"sync"
	"time"

	"smap-embeds/config"
	"smap-embeds/pkg/discord"
	"smap-embeds/pkg/log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	maxIdleConns        = 100
	maxIdleConnsPerHost = 100
	idleConnTimeout     = 90 * time.Second
)

// MinIO is the read side of object storage used to resolve uploaded embed files.
type MinIO interface {
	// Connect verifies the server is reachable.
	Connect(ctx context.Context) error
	ConnectWithRetry(ctx context.Context, maxRetries int) error
	HealthCheck(ctx context.Context) error
	Close() error

	// FileExists reports whether the object exists.
	FileExists(ctx context.Context, bucketName, objectName string) (bool, error)
	// GetFileInfo stats an object.
	GetFileInfo(ctx context.Context, bucketName, objectName string) (*FileInfo, error)
	// GetFile downloads an object into memory as an attachment named after the object's base name.
	GetFile(ctx context.Context, bucketName, objectName string) (*discord.File, error)
	// DefaultBucket is used when a request names no bucket.
	DefaultBucket() string
}

type implMinIO struct {
	l           log.Logger
	minioClient *minio.Client
	config      *config.MinIOConfig
	maxFileSize int64
	mu          sync.RWMutex
	connected   bool
}

// New creates a client. It does not contact the server; call Connect.
func New(l log.Logger, cfg *config.MinIOConfig) (MinIO, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	transport := &http.Transport{
		MaxIdleConns:        maxIdleConns,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, NewConnectionError(err)
	}

	return &implMinIO{
		l:           l,
		minioClient: client,
		config:      cfg,
		maxFileSize: MaxFileSize,
	}, nil
}
