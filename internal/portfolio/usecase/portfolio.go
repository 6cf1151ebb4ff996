package usecase

import (
	"context"
	"encoding/json"
	"time"

	"portfolio-srv/internal/model"
	"portfolio-srv/internal/portfolio"
	"portfolio-srv/internal/portfolio/repository"

	bundleRepo "portfolio-srv/internal/bundle/repository"
)

// GetSnapshot returns the current aggregated portfolio for a bundle.
// Cache first, then the stored snapshot if recent, then a fresh aggregation.
func (uc *implUseCase) GetSnapshot(ctx context.Context, sc model.Scope, input portfolio.GetSnapshotInput) (*model.PortfolioSnapshot, error) {
	b, err := uc.getOwnedBundle(ctx, sc, input.BundleID)
	if err != nil {
		return nil, err
	}

	if !input.ForceRefresh {
		cached, err := uc.cache.GetSnapshot(ctx, b.ID)
		if err == nil {
			return cached, nil
		}
		if err != repository.ErrCacheMiss {
			uc.l.Warnf(ctx, "portfolio.usecase.GetSnapshot: Cache read failed, falling through: %v", err)
		}
	}

	snapshot, err := uc.aggregateAndStore(ctx, b)
	if err != nil {
		// Serve the last stored snapshot when the aggregator is down.
		if stored, repoErr := uc.repo.GetLatestSnapshot(ctx, b.ID); repoErr == nil {
			uc.l.Warnf(ctx, "portfolio.usecase.GetSnapshot: Aggregation failed, serving stored snapshot: %v", err)
			return stored, nil
		}
		return nil, err
	}
	return snapshot, nil
}

// RefreshSnapshot forces a re-aggregation for one of the caller's bundles and
// publishes a refresh event for downstream consumers.
func (uc *implUseCase) RefreshSnapshot(ctx context.Context, sc model.Scope, bundleID string) (*model.PortfolioSnapshot, error) {
	b, err := uc.getOwnedBundle(ctx, sc, bundleID)
	if err != nil {
		return nil, err
	}

	snapshot, err := uc.aggregateAndStore(ctx, b)
	if err != nil {
		return nil, err
	}

	uc.publishSnapshotRequested(ctx, b.ID, sc.UserID)
	return snapshot, nil
}

// RefreshBundle recomputes and stores a snapshot without an owner check.
func (uc *implUseCase) RefreshBundle(ctx context.Context, bundleID string) (*model.PortfolioSnapshot, error) {
	b, err := uc.bundleRepo.GetByID(ctx, bundleID)
	if err != nil {
		if err == bundleRepo.ErrBundleNotFound {
			return nil, portfolio.ErrBundleNotFound
		}
		return nil, err
	}
	return uc.aggregateAndStore(ctx, b)
}

// GetHistory returns the bundle's stored value history, oldest first.
func (uc *implUseCase) GetHistory(ctx context.Context, sc model.Scope, input portfolio.GetHistoryInput) ([]model.ValuePoint, error) {
	b, err := uc.getOwnedBundle(ctx, sc, input.BundleID)
	if err != nil {
		return nil, err
	}

	days := input.Days
	if days == 0 {
		days = portfolio.DefaultHistoryDays
	}
	if days < 0 || days > portfolio.MaxHistoryDays {
		return nil, portfolio.ErrInvalidHistoryWindow
	}

	now := time.Now()
	points, err := uc.repo.ListValuePoints(ctx, repository.ListValuePointsOptions{
		BundleID: b.ID,
		From:     now.AddDate(0, 0, -days),
		To:       now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "portfolio.usecase.GetHistory: Failed to list value points: %v", err)
		return nil, err
	}
	return points, nil
}

// getOwnedBundle fetches a bundle and checks ownership.
func (uc *implUseCase) getOwnedBundle(ctx context.Context, sc model.Scope, bundleID string) (*model.Bundle, error) {
	b, err := uc.bundleRepo.GetByID(ctx, bundleID)
	if err != nil {
		if err == bundleRepo.ErrBundleNotFound {
			return nil, portfolio.ErrBundleNotFound
		}
		uc.l.Errorf(ctx, "portfolio.usecase.getOwnedBundle: Failed to get bundle: %v", err)
		return nil, err
	}
	if b.UserID != sc.UserID {
		return nil, portfolio.ErrNotOwner
	}
	return b, nil
}

// publishSnapshotRequested emits a refresh event. Publish failures are logged
// and swallowed; the synchronous refresh already succeeded.
func (uc *implUseCase) publishSnapshotRequested(ctx context.Context, bundleID, userID string) {
	if uc.producer == nil {
		return
	}

	event := model.Event{
		Type:       model.EventSnapshotRequested,
		OccurredAt: time.Now(),
		SnapshotRequested: &model.SnapshotRequestedEvent{
			BundleID: bundleID,
			UserID:   userID,
		},
	}
	value, err := json.Marshal(event)
	if err != nil {
		uc.l.Errorf(ctx, "portfolio.usecase.publishSnapshotRequested: Failed to marshal event: %v", err)
		return
	}
	if err := uc.producer.Publish([]byte(bundleID), value); err != nil {
		uc.l.Errorf(ctx, "portfolio.usecase.publishSnapshotRequested: Failed to publish event: %v", err)
	}
}
