package repository

import "errors"

var (
	ErrSnapshotNotFound     = errors.New("repository: snapshot not found")
	ErrSnapshotCreateFailed = errors.New("repository: failed to create snapshot")
	ErrCacheMiss            = errors.New("repository: snapshot not in cache")
)
