package risk

import (
	"context"

	"portfolio-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	GetSummary(ctx context.Context, sc model.Scope, bundleID string) (*model.RiskSummary, error)

	// EvaluateBundle recomputes the summary without an owner check and
	// reports whether it crossed the alert threshold. Used by the consumer.
	EvaluateBundle(ctx context.Context, bundleID string) (*model.RiskSummary, bool, error)
}
