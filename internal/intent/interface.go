package intent

import (
	"context"

	"portfolio-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Submit(ctx context.Context, sc model.Scope, input SubmitInput) (*model.Intent, error)
	Get(ctx context.Context, sc model.Scope, intentID string) (*model.Intent, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// SyncStatus polls the execution service for one intent and stores the
	// result. Used by the consumer; no owner check.
	SyncStatus(ctx context.Context, intentID string) (*model.Intent, error)

	// ListActive returns every intent not yet in a terminal state.
	ListActive(ctx context.Context) ([]*model.Intent, error)
}
