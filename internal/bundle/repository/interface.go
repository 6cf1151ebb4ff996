package repository

import (
	"context"

	"portfolio-srv/internal/model"
)

//go:generate mockery --name BundleRepository
type BundleRepository interface {
	Create(ctx context.Context, opts CreateOptions) (*model.Bundle, error)
	GetByID(ctx context.Context, id string) (*model.Bundle, error)
	List(ctx context.Context, opts ListOptions) ([]*model.Bundle, int64, error)
	ListAll(ctx context.Context) ([]*model.Bundle, error)
	Update(ctx context.Context, opts UpdateOptions) (*model.Bundle, error)
	Delete(ctx context.Context, id string) error
}
