package minio

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	miniogo "github.com/minio/minio-go/v7"
)

// EnsureBucket creates the bucket when it does not exist yet.
func (m *minioImpl) EnsureBucket(ctx context.Context, bucketName string) error {
	exists, err := m.client.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", bucketName, err)
	}
	if exists {
		return nil
	}
	if err := m.client.MakeBucket(ctx, bucketName, miniogo.MakeBucketOptions{Region: m.region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucketName, err)
	}
	return nil
}

// UploadFile stores one object and returns its metadata.
func (m *minioImpl) UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error) {
	if req == nil || req.BucketName == "" || req.ObjectName == "" {
		return nil, errors.New("bucket and object name are required")
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	info, err := m.client.PutObject(ctx, req.BucketName, req.ObjectName, req.Reader, req.Size, miniogo.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: req.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s/%s: %w", req.BucketName, req.ObjectName, err)
	}

	return &FileInfo{
		BucketName: info.Bucket,
		ObjectName: info.Key,
		Size:       info.Size,
		ETag:       info.ETag,
	}, nil
}

// DeleteFile removes one object.
func (m *minioImpl) DeleteFile(ctx context.Context, bucketName, objectName string) error {
	if err := m.client.RemoveObject(ctx, bucketName, objectName, miniogo.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", bucketName, objectName, err)
	}
	return nil
}

// FileExists checks if an object exists.
func (m *minioImpl) FileExists(ctx context.Context, bucketName, objectName string) (bool, error) {
	_, err := m.client.StatObject(ctx, bucketName, objectName, miniogo.StatObjectOptions{})
	if err != nil {
		resp := miniogo.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %s/%s: %w", bucketName, objectName, err)
	}
	return true, nil
}

// GetPresignedDownloadURL returns a time-limited URL for one object.
func (m *minioImpl) GetPresignedDownloadURL(ctx context.Context, req *PresignedURLRequest) (string, error) {
	if req == nil || req.BucketName == "" || req.ObjectName == "" {
		return "", errors.New("bucket and object name are required")
	}
	if req.Expiry <= 0 {
		req.Expiry = DefaultPresignedExpiry
	}

	u, err := m.client.PresignedGetObject(ctx, req.BucketName, req.ObjectName, req.Expiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("failed to presign %s/%s: %w", req.BucketName, req.ObjectName, err)
	}
	return u.String(), nil
}

// HealthCheck verifies the connection by listing buckets.
func (m *minioImpl) HealthCheck(ctx context.Context) error {
	if _, err := m.client.ListBuckets(ctx); err != nil {
		return fmt.Errorf("minio health check failed: %w", err)
	}
	return nil
}
