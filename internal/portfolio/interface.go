package portfolio

import (
	"context"

	"portfolio-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	GetSnapshot(ctx context.Context, sc model.Scope, input GetSnapshotInput) (*model.PortfolioSnapshot, error)
	RefreshSnapshot(ctx context.Context, sc model.Scope, bundleID string) (*model.PortfolioSnapshot, error)
	GetHistory(ctx context.Context, sc model.Scope, input GetHistoryInput) ([]model.ValuePoint, error)
	ExportCSV(ctx context.Context, sc model.Scope, input ExportInput) (ExportOutput, error)

	// RefreshBundle recomputes and stores a snapshot without an owner check.
	// Used by the background refresher, which acts on behalf of the system.
	RefreshBundle(ctx context.Context, bundleID string) (*model.PortfolioSnapshot, error)
}
