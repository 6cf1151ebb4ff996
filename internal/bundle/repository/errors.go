package repository

import "errors"

var (
	ErrBundleNotFound     = errors.New("repository: bundle not found")
	ErrBundleCreateFailed = errors.New("repository: failed to create bundle")
	ErrBundleUpdateFailed = errors.New("repository: failed to update bundle")
	ErrBundleDeleteFailed = errors.New("repository: failed to delete bundle")
)
