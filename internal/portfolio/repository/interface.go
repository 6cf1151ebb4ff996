package repository

import (
	"context"
	"time"

	"portfolio-srv/internal/model"
)

//go:generate mockery --name SnapshotRepository
type SnapshotRepository interface {
	CreateSnapshot(ctx context.Context, snapshot *model.PortfolioSnapshot) error
	GetLatestSnapshot(ctx context.Context, bundleID string) (*model.PortfolioSnapshot, error)
	ListValuePoints(ctx context.Context, opts ListValuePointsOptions) ([]model.ValuePoint, error)
	DeleteSnapshotsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetSnapshot(ctx context.Context, bundleID string) (*model.PortfolioSnapshot, error)
	SetSnapshot(ctx context.Context, snapshot *model.PortfolioSnapshot, ttl time.Duration) error
	InvalidateBundle(ctx context.Context, bundleID string) error
}
