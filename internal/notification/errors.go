package notification

import "errors"

var (
	ErrPreferenceNotFound = errors.New("notification preference not found")
	ErrNotOwner           = errors.New("preference belongs to another user")
	ErrInvalidChannel     = errors.New("invalid notification channel")
	ErrTargetRequired     = errors.New("notification target is required")
	ErrDispatchFailed     = errors.New("notification dispatch failed")
)
