package repository

import "errors"

var (
	ErrIntentNotFound     = errors.New("repository: intent not found")
	ErrIntentCreateFailed = errors.New("repository: failed to create intent")
	ErrIntentUpdateFailed = errors.New("repository: failed to update intent")
)
