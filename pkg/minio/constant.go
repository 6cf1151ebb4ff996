package minio

import "time"

const (
	// DefaultPresignedExpiry is how long presigned download URLs stay valid.
	DefaultPresignedExpiry = 15 * time.Minute
)
