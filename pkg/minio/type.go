package minio

import (
	"io"
	"time"

	miniogo "github.com/minio/minio-go/v7"
)

// MinIOConfig holds MinIO connection configuration.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
}

// UploadRequest describes one object upload.
type UploadRequest struct {
	BucketName  string
	ObjectName  string
	Reader      io.Reader
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// FileInfo describes a stored object.
type FileInfo struct {
	BucketName string
	ObjectName string
	Size       int64
	ETag       string
	UpdatedAt  time.Time
}

// PresignedURLRequest asks for a time-limited download URL.
type PresignedURLRequest struct {
	BucketName string
	ObjectName string
	Expiry     time.Duration
}

// minioImpl implements MinIO.
type minioImpl struct {
	client *miniogo.Client
	region string
}
