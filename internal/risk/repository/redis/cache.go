package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"portfolio-srv/internal/model"
	"portfolio-srv/internal/risk/repository"
	pkgRedis "portfolio-srv/pkg/redis"
)

func summaryKey(bundleID string) string {
	return fmt.Sprintf("risk:summary:%s", bundleID)
}

// GetSummary returns the cached risk summary or ErrCacheMiss.
func (r *implCacheRepository) GetSummary(ctx context.Context, bundleID string) (*model.RiskSummary, error) {
	data, err := r.redis.Get(ctx, summaryKey(bundleID))
	if err != nil {
		if pkgRedis.IsNotFound(err) {
			return nil, repository.ErrCacheMiss
		}
		r.l.Errorf(ctx, "risk.repository.redis.GetSummary: Failed to read cache: %v", err)
		return nil, err
	}

	var summary model.RiskSummary
	if err := json.Unmarshal([]byte(data), &summary); err != nil {
		r.l.Errorf(ctx, "risk.repository.redis.GetSummary: Failed to unmarshal summary: %v", err)
		return nil, err
	}
	return &summary, nil
}

// SetSummary caches one computed risk summary.
func (r *implCacheRepository) SetSummary(ctx context.Context, summary *model.RiskSummary, ttl time.Duration) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	if err := r.redis.Set(ctx, summaryKey(summary.BundleID), data, ttl); err != nil {
		r.l.Errorf(ctx, "risk.repository.redis.SetSummary: Failed to save to cache: %v", err)
		return err
	}
	return nil
}
