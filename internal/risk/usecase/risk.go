package usecase

import (
	"context"
	"time"

	bundleRepo "portfolio-srv/internal/bundle/repository"
	portfolioRepo "portfolio-srv/internal/portfolio/repository"

	"portfolio-srv/internal/model"
	"portfolio-srv/internal/risk"
	"portfolio-srv/internal/risk/repository"
)

// GetSummary returns the risk summary for one of the caller's bundles.
// Cache first, then the quant engine, then the local fallback engine.
func (uc *implUseCase) GetSummary(ctx context.Context, sc model.Scope, bundleID string) (*model.RiskSummary, error) {
	b, err := uc.bundleRepo.GetByID(ctx, bundleID)
	if err != nil {
		if err == bundleRepo.ErrBundleNotFound {
			return nil, risk.ErrBundleNotFound
		}
		uc.l.Errorf(ctx, "risk.usecase.GetSummary: Failed to get bundle: %v", err)
		return nil, err
	}
	if b.UserID != sc.UserID {
		return nil, risk.ErrNotOwner
	}

	cached, err := uc.cache.GetSummary(ctx, b.ID)
	if err == nil {
		return cached, nil
	}
	if err != repository.ErrCacheMiss {
		uc.l.Warnf(ctx, "risk.usecase.GetSummary: Cache read failed, falling through: %v", err)
	}

	summary, err := uc.computeSummary(ctx, b.ID)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.SetSummary(ctx, summary, risk.SummaryCacheTTL); err != nil {
		uc.l.Warnf(ctx, "risk.usecase.GetSummary: Failed to cache summary: %v", err)
	}
	return summary, nil
}

// EvaluateBundle recomputes the summary and reports whether it is at or above
// the alert level. The cache is refreshed as a side effect.
func (uc *implUseCase) EvaluateBundle(ctx context.Context, bundleID string) (*model.RiskSummary, bool, error) {
	summary, err := uc.computeSummary(ctx, bundleID)
	if err != nil {
		return nil, false, err
	}

	if err := uc.cache.SetSummary(ctx, summary, risk.SummaryCacheTTL); err != nil {
		uc.l.Warnf(ctx, "risk.usecase.EvaluateBundle: Failed to cache summary: %v", err)
	}

	alerting := summary.Level == model.RiskLevelHigh || summary.Level == model.RiskLevelCritical
	return summary, alerting, nil
}

// computeSummary asks the quant engine first and falls back to the local
// engine on any upstream failure.
func (uc *implUseCase) computeSummary(ctx context.Context, bundleID string) (*model.RiskSummary, error) {
	if uc.quant != nil {
		remote, err := uc.quant.GetRiskSummary(ctx, bundleID)
		if err == nil {
			return &model.RiskSummary{
				BundleID:         bundleID,
				VolatilityAnnual: remote.VolatilityAnnual,
				MaxDrawdown:      remote.MaxDrawdown,
				SharpeRatio:      remote.SharpeRatio,
				Level:            classifyLevel(remote.VolatilityAnnual),
				Source:           model.RiskSourceQuant,
				ComputedAt:       time.Now(),
			}, nil
		}
		uc.l.Warnf(ctx, "risk.usecase.computeSummary: Quant engine unavailable, using local fallback: %v", err)
	}

	return uc.computeLocal(ctx, bundleID)
}

// computeLocal derives the metrics from stored value history.
func (uc *implUseCase) computeLocal(ctx context.Context, bundleID string) (*model.RiskSummary, error) {
	now := time.Now()
	points, err := uc.snapshotRepo.ListValuePoints(ctx, portfolioRepo.ListValuePointsOptions{
		BundleID: bundleID,
		From:     now.AddDate(0, 0, -risk.FallbackHistoryDays),
		To:       now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "risk.usecase.computeLocal: Failed to list value points: %v", err)
		return nil, risk.ErrComputeFailed
	}
	if len(points) < risk.MinHistoryPoints {
		return nil, risk.ErrInsufficientHistory
	}

	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.ValueUSD
	}

	returns := dailyReturns(values)
	volatility := annualizedVolatility(returns)

	return &model.RiskSummary{
		BundleID:         bundleID,
		VolatilityAnnual: volatility,
		MaxDrawdown:      maxDrawdown(values),
		SharpeRatio:      sharpeRatio(returns),
		Level:            classifyLevel(volatility),
		Source:           model.RiskSourceLocal,
		ComputedAt:       time.Now(),
	}, nil
}

// classifyLevel maps annualized volatility onto the risk scale.
func classifyLevel(volatility float64) model.RiskLevel {
	switch {
	case volatility >= risk.VolatilityCriticalThreshold:
		return model.RiskLevelCritical
	case volatility >= risk.VolatilityHighThreshold:
		return model.RiskLevelHigh
	case volatility >= risk.VolatilityMediumThreshold:
		return model.RiskLevelMedium
	default:
		return model.RiskLevelLow
	}
}
