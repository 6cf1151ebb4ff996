package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"portfolio-srv/internal/model"
	"portfolio-srv/internal/portfolio/repository"
	pkgRedis "portfolio-srv/pkg/redis"
)

func snapshotKey(bundleID string) string {
	return fmt.Sprintf("portfolio:snapshot:%s", bundleID)
}

// GetSnapshot returns the cached snapshot or ErrCacheMiss.
func (r *implCacheRepository) GetSnapshot(ctx context.Context, bundleID string) (*model.PortfolioSnapshot, error) {
	data, err := r.redis.Get(ctx, snapshotKey(bundleID))
	if err != nil {
		if pkgRedis.IsNotFound(err) {
			return nil, repository.ErrCacheMiss
		}
		r.l.Errorf(ctx, "portfolio.repository.redis.GetSnapshot: Failed to read cache: %v", err)
		return nil, err
	}

	var snapshot model.PortfolioSnapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		r.l.Errorf(ctx, "portfolio.repository.redis.GetSnapshot: Failed to unmarshal snapshot: %v", err)
		return nil, err
	}
	return &snapshot, nil
}

// SetSnapshot caches one aggregated snapshot.
func (r *implCacheRepository) SetSnapshot(ctx context.Context, snapshot *model.PortfolioSnapshot, ttl time.Duration) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	if err := r.redis.Set(ctx, snapshotKey(snapshot.BundleID), data, ttl); err != nil {
		r.l.Errorf(ctx, "portfolio.repository.redis.SetSnapshot: Failed to save to cache: %v", err)
		return err
	}
	return nil
}

// InvalidateBundle drops all cached data for a bundle.
func (r *implCacheRepository) InvalidateBundle(ctx context.Context, bundleID string) error {
	pattern := fmt.Sprintf("portfolio:*:%s", bundleID)
	if err := r.redis.DeleteByPattern(ctx, pattern); err != nil {
		r.l.Errorf(ctx, "portfolio.repository.redis.InvalidateBundle: Failed to delete keys: %v", err)
		return err
	}
	return nil
}
