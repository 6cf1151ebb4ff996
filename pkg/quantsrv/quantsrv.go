package quantsrv

import (
	"context"
	"fmt"
	"net/url"
)

// GetRiskSummary returns the quant engine's risk report for a bundle.
func (q *quantImpl) GetRiskSummary(ctx context.Context, bundleID string) (*RiskSummary, error) {
	if bundleID == "" {
		return nil, fmt.Errorf("quantsrv: bundle ID is required")
	}

	var summary RiskSummary
	endpoint := fmt.Sprintf("%s/%s", PathRiskSummary, url.PathEscape(bundleID))
	if err := q.httpClient.Get(ctx, endpoint, &summary); err != nil {
		return nil, fmt.Errorf("failed to get risk summary: %w", err)
	}
	return &summary, nil
}

// GetValueHistory returns daily value samples for the last N days.
func (q *quantImpl) GetValueHistory(ctx context.Context, bundleID string, days int) ([]ValuePoint, error) {
	if bundleID == "" {
		return nil, fmt.Errorf("quantsrv: bundle ID is required")
	}
	if days <= 0 {
		days = 30
	}

	var points []ValuePoint
	endpoint := fmt.Sprintf("%s/%s?days=%d", PathValueHistory, url.PathEscape(bundleID), days)
	if err := q.httpClient.Get(ctx, endpoint, &points); err != nil {
		return nil, fmt.Errorf("failed to get value history: %w", err)
	}
	return points, nil
}

// GetPerformance returns the quant engine's return report for a bundle.
func (q *quantImpl) GetPerformance(ctx context.Context, bundleID string) (*Performance, error) {
	if bundleID == "" {
		return nil, fmt.Errorf("quantsrv: bundle ID is required")
	}

	var perf Performance
	endpoint := fmt.Sprintf("%s/%s", PathPerformance, url.PathEscape(bundleID))
	if err := q.httpClient.Get(ctx, endpoint, &perf); err != nil {
		return nil, fmt.Errorf("failed to get performance: %w", err)
	}
	return &perf, nil
}
