package repository

import (
	"context"

	"portfolio-srv/internal/model"
)

//go:generate mockery --name IntentRepository
type IntentRepository interface {
	Create(ctx context.Context, intent *model.Intent) error
	GetByID(ctx context.Context, id string) (*model.Intent, error)
	List(ctx context.Context, opts ListOptions) ([]*model.Intent, int64, error)
	ListActive(ctx context.Context) ([]*model.Intent, error)
	UpdateStatus(ctx context.Context, opts UpdateStatusOptions) error
}
