package repository

import (
	"context"

	"portfolio-srv/internal/model"
)

//go:generate mockery --name PreferenceRepository
type PreferenceRepository interface {
	Upsert(ctx context.Context, pref *model.NotificationPreference) (*model.NotificationPreference, error)
	GetByID(ctx context.Context, id string) (*model.NotificationPreference, error)
	ListByUser(ctx context.Context, userID string) ([]*model.NotificationPreference, error)
	Delete(ctx context.Context, id string) error
}
