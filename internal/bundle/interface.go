package bundle

import (
	"context"

	"portfolio-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (*model.Bundle, error)
	Get(ctx context.Context, sc model.Scope, bundleID string) (*model.Bundle, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (*model.Bundle, error)
	Delete(ctx context.Context, sc model.Scope, bundleID string) error
	AddAddress(ctx context.Context, sc model.Scope, input AddressInput) (*model.Bundle, error)
	RemoveAddress(ctx context.Context, sc model.Scope, input AddressInput) (*model.Bundle, error)
}
