package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"smap-embeds/pkg/discord"

	"github.com/minio/minio-go/v7"
)

// Connect lists buckets to verify the credentials.
func (m *implMinIO) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := m.minioClient.ListBuckets(ctx)
	if err != nil {
		m.connected = false
		return handleMinIOError(err, "connect")
	}

	m.connected = true
	return nil
}

// ConnectWithRetry retries Connect with exponential backoff.
func (m *implMinIO) ConnectWithRetry(ctx context.Context, maxRetries int) error {
	var lastErr error
	for i := 0; i < maxRetries; i++ {
		err := m.Connect(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		backoff := time.Duration(1<<uint(i)) * time.Second
		m.l.Warnf(ctx, "minio.ConnectWithRetry: attempt %d/%d failed, retrying in %v: %v", i+1, maxRetries, backoff, err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
	return fmt.Errorf("failed to connect after %d retries: %w", maxRetries, lastErr)
}

func (m *implMinIO) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.connected {
		return NewConnectionError(fmt.Errorf("not connected"))
	}

	if _, err := m.minioClient.ListBuckets(ctx); err != nil {
		return handleMinIOError(err, "health_check")
	}
	return nil
}

// Close marks the client disconnected; minio-go owns the connection pool.
func (m *implMinIO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.connected = false
	return nil
}

func (m *implMinIO) DefaultBucket() string {
	return m.config.Bucket
}

func (m *implMinIO) FileExists(ctx context.Context, bucketName, objectName string) (bool, error) {
	_, err := m.GetFileInfo(ctx, bucketName, objectName)
	if err == nil {
		return true, nil
	}
	if se, ok := err.(*StorageError); ok && se.Code == ErrCodeObjectNotFound {
		return false, nil
	}
	return false, err
}

func (m *implMinIO) GetFileInfo(ctx context.Context, bucketName, objectName string) (*FileInfo, error) {
	if err := validateBucketName(bucketName); err != nil {
		return nil, err
	}
	if err := validateObjectName(objectName); err != nil {
		return nil, err
	}

	objInfo, err := m.minioClient.StatObject(ctx, bucketName, objectName, minio.StatObjectOptions{})
	if err != nil {
		return nil, handleMinIOError(err, "get_file_info")
	}

	return &FileInfo{
		BucketName:   bucketName,
		ObjectName:   objectName,
		Size:         objInfo.Size,
		ContentType:  objInfo.ContentType,
		ETag:         objInfo.ETag,
		LastModified: objInfo.LastModified,
		Metadata:     objInfo.UserMetadata,
	}, nil
}

func (m *implMinIO) GetFile(ctx context.Context, bucketName, objectName string) (*discord.File, error) {
	info, err := m.GetFileInfo(ctx, bucketName, objectName)
	if err != nil {
		return nil, err
	}
	if info.Size > m.maxFileSize {
		return nil, NewTooLargeError(objectName, info.Size, m.maxFileSize)
	}

	object, err := m.minioClient.GetObject(ctx, bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, handleMinIOError(err, "get_file")
	}
	defer object.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, io.LimitReader(object, m.maxFileSize+1)); err != nil {
		return nil, handleMinIOError(err, "get_file")
	}
	if int64(buf.Len()) > m.maxFileSize {
		return nil, NewTooLargeError(objectName, int64(buf.Len()), m.maxFileSize)
	}

	return discord.NewFile(objectName, &buf), nil
}

func handleMinIOError(err error, operation string) *StorageError {
	if err == nil {
		return nil
	}

	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchBucket":
		e := NewBucketNotFoundError(resp.BucketName)
		e.Operation = operation
		return e
	case "NoSuchKey":
		e := NewObjectNotFoundError(resp.Key)
		e.Operation = operation
		return e
	case "AccessDenied":
		return &StorageError{
			Code:      ErrCodePermission,
			Message:   "Access denied",
			Operation: operation,
			Cause:     err,
		}
	case "":
		e := NewConnectionError(err)
		e.Operation = operation
		return e
	default:
		return &StorageError{
			Code:      ErrCodeConnection,
			Message:   fmt.Sprintf("MinIO operation failed: %s", resp.Code),
			Operation: operation,
			Cause:     err,
		}
	}
}
