package repository

import "errors"

var (
	ErrPreferenceNotFound     = errors.New("repository: preference not found")
	ErrPreferenceUpsertFailed = errors.New("repository: failed to save preference")
	ErrPreferenceDeleteFailed = errors.New("repository: failed to delete preference")
)
