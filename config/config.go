package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	// Server Configuration
	Server ServerConfig
	Logger LoggerConfig

	// Delivery
	Discord DiscordConfig

	// Uploaded files referenced by embeds
	MinIO MinIOConfig

	// Embed validation
	Embed EmbedConfig
}

// ServerConfig is the configuration for the HTTP server
type ServerConfig struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"HTTP_PORT" envDefault:"8080"`
	Mode string `env:"HTTP_MODE" envDefault:"release"`
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"false"`
}

// DiscordConfig is the configuration for the Discord webhook
type DiscordConfig struct {
	WebhookURL string        `env:"DISCORD_WEBHOOK_URL"`
	Timeout    time.Duration `env:"DISCORD_TIMEOUT" envDefault:"30s"`
	RetryCount int           `env:"DISCORD_RETRY_COUNT" envDefault:"3"`
	RetryDelay time.Duration `env:"DISCORD_RETRY_DELAY" envDefault:"1s"`
	Username   string        `env:"DISCORD_USERNAME" envDefault:"SMAP Bot"`
	AvatarURL  string        `env:"DISCORD_AVATAR_URL"`
}

// MinIOConfig is the configuration for MinIO
type MinIOConfig struct {
	Enabled   bool   `env:"MINIO_ENABLED" envDefault:"false"`
	Endpoint  string `env:"MINIO_ENDPOINT" envDefault:"localhost:9000"`
	AccessKey string `env:"MINIO_ACCESS_KEY"`
	SecretKey string `env:"MINIO_SECRET_KEY"`
	Region    string `env:"MINIO_REGION" envDefault:"us-east-1"`
	UseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`
	Bucket    string `env:"MINIO_BUCKET" envDefault:"embeds"`
}

// EmbedConfig overrides the default embed limits. Zero keeps the default.
type EmbedConfig struct {
	CheckURLs bool `env:"EMBED_CHECK_URLS" envDefault:"true"`

	Title       int `env:"EMBED_LIMIT_TITLE"`
	Description int `env:"EMBED_LIMIT_DESCRIPTION"`
	Fields      int `env:"EMBED_LIMIT_FIELDS"`
	FieldName   int `env:"EMBED_LIMIT_FIELD_NAME"`
	FieldValue  int `env:"EMBED_LIMIT_FIELD_VALUE"`
	FooterText  int `env:"EMBED_LIMIT_FOOTER_TEXT"`
	AuthorName  int `env:"EMBED_LIMIT_AUTHOR_NAME"`
	Total       int `env:"EMBED_LIMIT_EMBED"`
	Embeds      int `env:"EMBED_LIMIT_EMBEDS"`
}

// LimitOverrides returns the non-zero limits keyed by registry name.
func (c EmbedConfig) LimitOverrides() map[string]int {
	all := map[string]int{
		"title":       c.Title,
		"description": c.Description,
		"fields":      c.Fields,
		"field_name":  c.FieldName,
		"field_value": c.FieldValue,
		"footer_text": c.FooterText,
		"author_name": c.AuthorName,
		"embed":       c.Total,
		"embeds":      c.Embeds,
	}
	out := make(map[string]int)
	for k, v := range all {
		if v != 0 {
			out[k] = v
		}
	}
	return out
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 {
		return fmt.Errorf("config: HTTP_PORT must be positive")
	}
	if cfg.Discord.RetryCount < 0 {
		return fmt.Errorf("config: DISCORD_RETRY_COUNT must not be negative")
	}
	if cfg.MinIO.Enabled && (cfg.MinIO.AccessKey == "" || cfg.MinIO.SecretKey == "") {
		return fmt.Errorf("config: MINIO_ACCESS_KEY and MINIO_SECRET_KEY are required when MINIO_ENABLED")
	}
	return nil
}
