package minio

import (
	"errors"
	"testing"

	"smap-embeds/config"
	"smap-embeds/pkg/log"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleMinIOError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{name: "missing bucket", err: minio.ErrorResponse{Code: "NoSuchBucket", BucketName: "b"}, wantCode: ErrCodeBucketNotFound},
		{name: "missing key", err: minio.ErrorResponse{Code: "NoSuchKey", Key: "k"}, wantCode: ErrCodeObjectNotFound},
		{name: "denied", err: minio.ErrorResponse{Code: "AccessDenied"}, wantCode: ErrCodePermission},
		{name: "other s3 code", err: minio.ErrorResponse{Code: "SlowDown"}, wantCode: ErrCodeConnection},
		{name: "network", err: errors.New("dial tcp: refused"), wantCode: ErrCodeConnection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := handleMinIOError(tt.err, "op")
			require.NotNil(t, got)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, "op", got.Operation)
		})
	}

	assert.Nil(t, handleMinIOError(nil, "op"))
}

func TestValidateNames(t *testing.T) {
	tests := []struct {
		name    string
		bucket  string
		object  string
		wantErr bool
	}{
		{name: "ok", bucket: "embeds", object: "2024/logo.png"},
		{name: "short bucket", bucket: "ab", object: "x", wantErr: true},
		{name: "upper bucket", bucket: "Embeds", object: "x", wantErr: true},
		{name: "hyphen edge", bucket: "-embeds", object: "x", wantErr: true},
		{name: "empty object", bucket: "embeds", wantErr: true},
		{name: "prefix object", bucket: "embeds", object: "dir/", wantErr: true},
		{name: "backslash", bucket: "embeds", object: `a\b`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBucketName(tt.bucket)
			if err == nil {
				err = validateObjectName(tt.object)
			}
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNew(t *testing.T) {
	_, err := New(log.NewNop(), &config.MinIOConfig{Endpoint: "localhost"})
	var se *StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, ErrCodeInvalidInput, se.Code)

	cfg := &config.MinIOConfig{Endpoint: "localhost", AccessKey: "a", SecretKey: "b", Region: "us-east-1", Bucket: "embeds"}
	m, err := New(log.NewNop(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", cfg.Endpoint)
	assert.Equal(t, "embeds", m.DefaultBucket())
	assert.Error(t, m.HealthCheck(t.Context()))
}
