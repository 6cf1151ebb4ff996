package repository

import (
	"context"
	"time"

	"portfolio-srv/internal/model"
)

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetSummary(ctx context.Context, bundleID string) (*model.RiskSummary, error)
	SetSummary(ctx context.Context, summary *model.RiskSummary, ttl time.Duration) error
}
