package repository

import "portfolio-srv/internal/model"

type ListOptions struct {
	UserID   string
	BundleID string
	Limit    int64
	Offset   int64
}

type UpdateStatusOptions struct {
	ID         string
	Status     model.IntentStatus
	ExternalID string
	FailReason string
}
