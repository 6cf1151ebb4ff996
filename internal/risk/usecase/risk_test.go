package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	bundleRepo "portfolio-srv/internal/bundle/repository"
	portfolioRepo "portfolio-srv/internal/portfolio/repository"

	"portfolio-srv/internal/model"
	"portfolio-srv/internal/risk"
	"portfolio-srv/internal/risk/repository"
	"portfolio-srv/pkg/log"
	"portfolio-srv/pkg/quantsrv"
)

type fakeBundleRepo struct {
	bundles map[string]*model.Bundle
}

func (f *fakeBundleRepo) Create(_ context.Context, _ bundleRepo.CreateOptions) (*model.Bundle, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBundleRepo) GetByID(_ context.Context, id string) (*model.Bundle, error) {
	b, ok := f.bundles[id]
	if !ok {
		return nil, bundleRepo.ErrBundleNotFound
	}
	return b, nil
}

func (f *fakeBundleRepo) List(_ context.Context, _ bundleRepo.ListOptions) ([]*model.Bundle, int64, error) {
	return nil, 0, errors.New("not implemented")
}

func (f *fakeBundleRepo) ListAll(_ context.Context) ([]*model.Bundle, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBundleRepo) Update(_ context.Context, _ bundleRepo.UpdateOptions) (*model.Bundle, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBundleRepo) Delete(_ context.Context, _ string) error {
	return errors.New("not implemented")
}

type fakeSnapshotRepo struct {
	points []model.ValuePoint
	err    error
}

func (f *fakeSnapshotRepo) CreateSnapshot(_ context.Context, _ *model.PortfolioSnapshot) error {
	return errors.New("not implemented")
}

func (f *fakeSnapshotRepo) GetLatestSnapshot(_ context.Context, _ string) (*model.PortfolioSnapshot, error) {
	return nil, portfolioRepo.ErrSnapshotNotFound
}

func (f *fakeSnapshotRepo) ListValuePoints(_ context.Context, _ portfolioRepo.ListValuePointsOptions) ([]model.ValuePoint, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.points, nil
}

func (f *fakeSnapshotRepo) DeleteSnapshotsBefore(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

type fakeSummaryCache struct {
	summaries map[string]*model.RiskSummary
	sets      int
}

func newFakeSummaryCache() *fakeSummaryCache {
	return &fakeSummaryCache{summaries: make(map[string]*model.RiskSummary)}
}

func (f *fakeSummaryCache) GetSummary(_ context.Context, bundleID string) (*model.RiskSummary, error) {
	s, ok := f.summaries[bundleID]
	if !ok {
		return nil, repository.ErrCacheMiss
	}
	return s, nil
}

func (f *fakeSummaryCache) SetSummary(_ context.Context, summary *model.RiskSummary, _ time.Duration) error {
	f.summaries[summary.BundleID] = summary
	f.sets++
	return nil
}

type fakeQuant struct {
	summary *quantsrv.RiskSummary
	err     error
	calls   int
}

func (f *fakeQuant) GetRiskSummary(_ context.Context, _ string) (*quantsrv.RiskSummary, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.summary, nil
}

func (f *fakeQuant) GetValueHistory(_ context.Context, _ string, _ int) ([]quantsrv.ValuePoint, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeQuant) GetPerformance(_ context.Context, _ string) (*quantsrv.Performance, error) {
	return nil, errors.New("not implemented")
}

func riskBundles(userID string) *fakeBundleRepo {
	return &fakeBundleRepo{bundles: map[string]*model.Bundle{
		"b-1": {ID: "b-1", UserID: userID, Name: "Main"},
	}}
}

// flatHistory yields n daily samples with a constant value, so the local
// engine computes zero volatility.
func flatHistory(n int) []model.ValuePoint {
	points := make([]model.ValuePoint, n)
	now := time.Now()
	for i := range points {
		points[i] = model.ValuePoint{
			Time:     now.AddDate(0, 0, i-n),
			ValueUSD: 1000,
		}
	}
	return points
}

func TestRiskGetSummary(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	t.Run("returns cached summary without recomputing", func(t *testing.T) {
		cache := newFakeSummaryCache()
		cached := &model.RiskSummary{BundleID: "b-1", Level: model.RiskLevelMedium, Source: model.RiskSourceQuant}
		cache.summaries["b-1"] = cached
		quant := &fakeQuant{}
		uc := New(riskBundles("user-1"), &fakeSnapshotRepo{}, cache, quant, log.NewNop())

		got, err := uc.GetSummary(ctx, sc, "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != cached {
			t.Error("expected the cached summary returned as-is")
		}
		if quant.calls != 0 {
			t.Errorf("expected no quant calls on cache hit, got %d", quant.calls)
		}
	})

	t.Run("classifies and caches the quant engine result", func(t *testing.T) {
		cache := newFakeSummaryCache()
		quant := &fakeQuant{summary: &quantsrv.RiskSummary{
			BundleID:         "b-1",
			VolatilityAnnual: 0.45,
			MaxDrawdown:      0.20,
			SharpeRatio:      1.1,
		}}
		uc := New(riskBundles("user-1"), &fakeSnapshotRepo{}, cache, quant, log.NewNop())

		got, err := uc.GetSummary(ctx, sc, "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Source != model.RiskSourceQuant {
			t.Errorf("expected quant source, got %s", got.Source)
		}
		if got.Level != model.RiskLevelMedium {
			t.Errorf("expected medium level for 45%% volatility, got %s", got.Level)
		}
		if cache.sets != 1 {
			t.Errorf("expected the summary cached once, got %d writes", cache.sets)
		}
	})

	t.Run("falls back to local computation when the quant engine is unavailable", func(t *testing.T) {
		quant := &fakeQuant{err: errors.New("quant engine down")}
		snapshots := &fakeSnapshotRepo{points: flatHistory(30)}
		uc := New(riskBundles("user-1"), snapshots, newFakeSummaryCache(), quant, log.NewNop())

		got, err := uc.GetSummary(ctx, sc, "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quant.calls != 1 {
			t.Errorf("expected one quant attempt before falling back, got %d", quant.calls)
		}
		if got.Source != model.RiskSourceLocal {
			t.Errorf("expected local source, got %s", got.Source)
		}
		if got.Level != model.RiskLevelLow {
			t.Errorf("expected low level for a flat history, got %s", got.Level)
		}
	})

	t.Run("computes locally when no quant client is configured", func(t *testing.T) {
		snapshots := &fakeSnapshotRepo{points: flatHistory(30)}
		uc := New(riskBundles("user-1"), snapshots, newFakeSummaryCache(), nil, log.NewNop())

		got, err := uc.GetSummary(ctx, sc, "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Source != model.RiskSourceLocal {
			t.Errorf("expected local source, got %s", got.Source)
		}
	})

	t.Run("rejects too little history for the local engine", func(t *testing.T) {
		quant := &fakeQuant{err: errors.New("quant engine down")}
		snapshots := &fakeSnapshotRepo{points: flatHistory(risk.MinHistoryPoints - 1)}
		uc := New(riskBundles("user-1"), snapshots, newFakeSummaryCache(), quant, log.NewNop())

		_, err := uc.GetSummary(ctx, sc, "b-1")
		if !errors.Is(err, risk.ErrInsufficientHistory) {
			t.Errorf("expected ErrInsufficientHistory, got %v", err)
		}
	})

	t.Run("rejects missing bundle", func(t *testing.T) {
		uc := New(riskBundles("user-1"), &fakeSnapshotRepo{}, newFakeSummaryCache(), &fakeQuant{}, log.NewNop())

		_, err := uc.GetSummary(ctx, sc, "nope")
		if !errors.Is(err, risk.ErrBundleNotFound) {
			t.Errorf("expected ErrBundleNotFound, got %v", err)
		}
	})

	t.Run("rejects another user's bundle", func(t *testing.T) {
		uc := New(riskBundles("user-2"), &fakeSnapshotRepo{}, newFakeSummaryCache(), &fakeQuant{}, log.NewNop())

		_, err := uc.GetSummary(ctx, sc, "b-1")
		if !errors.Is(err, risk.ErrNotOwner) {
			t.Errorf("expected ErrNotOwner, got %v", err)
		}
	})
}

func TestRiskEvaluateBundle(t *testing.T) {
	ctx := context.Background()

	t.Run("alerts at high volatility", func(t *testing.T) {
		cache := newFakeSummaryCache()
		quant := &fakeQuant{summary: &quantsrv.RiskSummary{BundleID: "b-1", VolatilityAnnual: 0.75}}
		uc := New(riskBundles("user-1"), &fakeSnapshotRepo{}, cache, quant, log.NewNop())

		summary, alerting, err := uc.EvaluateBundle(ctx, "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Level != model.RiskLevelHigh {
			t.Errorf("expected high level for 75%% volatility, got %s", summary.Level)
		}
		if !alerting {
			t.Error("expected a high-level summary to alert")
		}
		if cache.sets != 1 {
			t.Errorf("expected the cache refreshed, got %d writes", cache.sets)
		}
	})

	t.Run("does not alert below the high threshold", func(t *testing.T) {
		quant := &fakeQuant{summary: &quantsrv.RiskSummary{BundleID: "b-1", VolatilityAnnual: 0.10}}
		uc := New(riskBundles("user-1"), &fakeSnapshotRepo{}, newFakeSummaryCache(), quant, log.NewNop())

		summary, alerting, err := uc.EvaluateBundle(ctx, "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Level != model.RiskLevelLow {
			t.Errorf("expected low level for 10%% volatility, got %s", summary.Level)
		}
		if alerting {
			t.Error("expected no alert for a low-level summary")
		}
	})

	t.Run("alerts at critical volatility", func(t *testing.T) {
		quant := &fakeQuant{summary: &quantsrv.RiskSummary{BundleID: "b-1", VolatilityAnnual: 1.25}}
		uc := New(riskBundles("user-1"), &fakeSnapshotRepo{}, newFakeSummaryCache(), quant, log.NewNop())

		summary, alerting, err := uc.EvaluateBundle(ctx, "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Level != model.RiskLevelCritical {
			t.Errorf("expected critical level for 125%% volatility, got %s", summary.Level)
		}
		if !alerting {
			t.Error("expected a critical-level summary to alert")
		}
	})
}
