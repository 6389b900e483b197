package minio

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
)

// Connect verifies connectivity and marks the client as connected.
func (m *implMinIO) Connect(ctx context.Context) error {
	if _, err := m.minioClient.ListBuckets(ctx); err != nil {
		return fmt.Errorf("minio: failed to connect: %w", err)
	}

	m.mu.Lock()
	m.connected = true
	m.mu.Unlock()
	return nil
}

// ConnectWithRetry connects with linear backoff between attempts.
func (m *implMinIO) ConnectWithRetry(ctx context.Context, maxRetries int) error {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(connectRetryWait * time.Duration(attempt)):
			}
		}
		if lastErr = m.Connect(ctx); lastErr == nil {
			return nil
		}
	}
	return fmt.Errorf("minio: failed to connect after %d attempts: %w", maxRetries+1, lastErr)
}

// HealthCheck verifies the connection is alive.
func (m *implMinIO) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	connected := m.connected
	m.mu.RUnlock()
	if !connected {
		return ErrNotConnected
	}

	if _, err := m.minioClient.ListBuckets(ctx); err != nil {
		return fmt.Errorf("minio: health check failed: %w", err)
	}
	return nil
}

// Close marks the client as disconnected.
func (m *implMinIO) Close() error {
	m.mu.Lock()
	m.connected = false
	m.mu.Unlock()
	return nil
}

// BucketExists checks if a bucket exists.
func (m *implMinIO) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	exists, err := m.minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return false, fmt.Errorf("minio: failed to check bucket %s: %w", bucketName, err)
	}
	return exists, nil
}

// EnsureBucket creates the bucket if it does not already exist.
func (m *implMinIO) EnsureBucket(ctx context.Context, bucketName string) error {
	exists, err := m.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if err := m.minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: m.config.Region}); err != nil {
		return fmt.Errorf("minio: failed to create bucket %s: %w", bucketName, err)
	}
	return nil
}

// UploadFile uploads a file and returns its stored metadata.
func (m *implMinIO) UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error) {
	if req == nil || req.BucketName == "" || req.ObjectName == "" || req.Reader == nil {
		return nil, fmt.Errorf("minio: bucket name, object name and reader are required")
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	info, err := m.minioClient.PutObject(ctx, req.BucketName, req.ObjectName, req.Reader, req.Size, minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: req.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("minio: failed to upload %s/%s: %w", req.BucketName, req.ObjectName, err)
	}

	return &FileInfo{
		BucketName:   req.BucketName,
		ObjectName:   req.ObjectName,
		OriginalName: req.OriginalName,
		Size:         info.Size,
		ContentType:  contentType,
		ETag:         info.ETag,
		LastModified: time.Now().UTC(),
	}, nil
}

// GetPresignedDownloadURL generates a time-limited download URL.
func (m *implMinIO) GetPresignedDownloadURL(ctx context.Context, req *PresignedURLRequest) (*PresignedURLResponse, error) {
	if req == nil || req.BucketName == "" || req.ObjectName == "" {
		return nil, fmt.Errorf("minio: bucket name and object name are required")
	}

	expiry := req.Expiry
	if expiry <= 0 {
		expiry = DefaultPresignedExpiry
	}
	if expiry > MaxPresignedExpiry {
		expiry = MaxPresignedExpiry
	}

	url, err := m.minioClient.PresignedGetObject(ctx, req.BucketName, req.ObjectName, expiry, nil)
	if err != nil {
		return nil, fmt.Errorf("minio: failed to presign %s/%s: %w", req.BucketName, req.ObjectName, err)
	}

	return &PresignedURLResponse{
		URL:       url.String(),
		ExpiresAt: time.Now().UTC().Add(expiry),
	}, nil
}

// FileExists checks if an object exists.
func (m *implMinIO) FileExists(ctx context.Context, bucketName, objectName string) (bool, error) {
	_, err := m.minioClient.StatObject(ctx, bucketName, objectName, minio.StatObjectOptions{})
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NoSuchBucket" {
			return false, nil
		}
		return false, fmt.Errorf("minio: failed to stat %s/%s: %w", bucketName, objectName, err)
	}
	return true, nil
}

// DeleteFile removes an object.
func (m *implMinIO) DeleteFile(ctx context.Context, bucketName, objectName string) error {
	if err := m.minioClient.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("minio: failed to delete %s/%s: %w", bucketName, objectName, err)
	}
	return nil
}
