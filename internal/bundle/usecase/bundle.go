package usecase

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"portfolio-srv/internal/bundle"
	"portfolio-srv/internal/bundle/repository"
	"portfolio-srv/internal/model"
)

// evmAddressPattern matches a 0x-prefixed 20-byte hex address.
var evmAddressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// Create validates the input and stores a new bundle for the caller.
// Addresses are lowercased and deduplicated before storage.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input bundle.CreateInput) (*model.Bundle, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, bundle.ErrNameRequired
	}

	addresses, err := normalizeAddresses(input.Addresses)
	if err != nil {
		return nil, err
	}
	if len(addresses) > bundle.MaxAddressesPerBundle {
		return nil, bundle.ErrTooManyAddresses
	}

	b, err := uc.repo.Create(ctx, repository.CreateOptions{
		ID:        uuid.New().String(),
		UserID:    sc.UserID,
		Name:      strings.TrimSpace(input.Name),
		Addresses: addresses,
	})
	if err != nil {
		uc.l.Errorf(ctx, "bundle.usecase.Create: Failed to create bundle: %v", err)
		return nil, err
	}
	return b, nil
}

// Get returns one of the caller's bundles.
func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, bundleID string) (*model.Bundle, error) {
	return uc.getOwned(ctx, sc, bundleID)
}

// List returns the caller's bundles, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input bundle.ListInput) (bundle.ListOutput, error) {
	input.PaginateQuery.Adjust()

	bundles, total, err := uc.repo.List(ctx, repository.ListOptions{
		UserID: sc.UserID,
		Limit:  input.PaginateQuery.Limit,
		Offset: input.PaginateQuery.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "bundle.usecase.List: Failed to list bundles: %v", err)
		return bundle.ListOutput{}, err
	}

	return bundle.ListOutput{
		Bundles:   bundles,
		Paginator: input.PaginateQuery.Build(total, int64(len(bundles))),
	}, nil
}

// Update renames one of the caller's bundles.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input bundle.UpdateInput) (*model.Bundle, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, bundle.ErrNameRequired
	}

	b, err := uc.getOwned(ctx, sc, input.BundleID)
	if err != nil {
		return nil, err
	}

	updated, err := uc.repo.Update(ctx, repository.UpdateOptions{
		ID:        b.ID,
		Name:      strings.TrimSpace(input.Name),
		Addresses: b.Addresses,
	})
	if err != nil {
		uc.l.Errorf(ctx, "bundle.usecase.Update: Failed to update bundle: %v", err)
		return nil, err
	}
	return updated, nil
}

// Delete removes one of the caller's bundles.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, bundleID string) error {
	if _, err := uc.getOwned(ctx, sc, bundleID); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, bundleID); err != nil {
		uc.l.Errorf(ctx, "bundle.usecase.Delete: Failed to delete bundle: %v", err)
		return err
	}
	return nil
}

// AddAddress appends a wallet address to one of the caller's bundles.
func (uc *implUseCase) AddAddress(ctx context.Context, sc model.Scope, input bundle.AddressInput) (*model.Bundle, error) {
	address, err := normalizeAddress(input.Address)
	if err != nil {
		return nil, err
	}

	b, err := uc.getOwned(ctx, sc, input.BundleID)
	if err != nil {
		return nil, err
	}
	if b.HasAddress(address) {
		return nil, bundle.ErrAddressExists
	}
	if len(b.Addresses) >= bundle.MaxAddressesPerBundle {
		return nil, bundle.ErrTooManyAddresses
	}

	updated, err := uc.repo.Update(ctx, repository.UpdateOptions{
		ID:        b.ID,
		Name:      b.Name,
		Addresses: append(b.Addresses, address),
	})
	if err != nil {
		uc.l.Errorf(ctx, "bundle.usecase.AddAddress: Failed to update bundle: %v", err)
		return nil, err
	}
	return updated, nil
}

// RemoveAddress removes a wallet address from one of the caller's bundles.
func (uc *implUseCase) RemoveAddress(ctx context.Context, sc model.Scope, input bundle.AddressInput) (*model.Bundle, error) {
	address, err := normalizeAddress(input.Address)
	if err != nil {
		return nil, err
	}

	b, err := uc.getOwned(ctx, sc, input.BundleID)
	if err != nil {
		return nil, err
	}
	if !b.HasAddress(address) {
		return nil, bundle.ErrAddressNotFound
	}

	remaining := make([]string, 0, len(b.Addresses)-1)
	for _, a := range b.Addresses {
		if a != address {
			remaining = append(remaining, a)
		}
	}

	updated, err := uc.repo.Update(ctx, repository.UpdateOptions{
		ID:        b.ID,
		Name:      b.Name,
		Addresses: remaining,
	})
	if err != nil {
		uc.l.Errorf(ctx, "bundle.usecase.RemoveAddress: Failed to update bundle: %v", err)
		return nil, err
	}
	return updated, nil
}

// getOwned fetches a bundle and checks ownership.
func (uc *implUseCase) getOwned(ctx context.Context, sc model.Scope, bundleID string) (*model.Bundle, error) {
	b, err := uc.repo.GetByID(ctx, bundleID)
	if err != nil {
		if err == repository.ErrBundleNotFound {
			return nil, bundle.ErrBundleNotFound
		}
		uc.l.Errorf(ctx, "bundle.usecase.getOwned: Failed to get bundle: %v", err)
		return nil, err
	}
	if b.UserID != sc.UserID {
		return nil, bundle.ErrNotOwner
	}
	return b, nil
}

func normalizeAddress(address string) (string, error) {
	address = strings.ToLower(strings.TrimSpace(address))
	if !evmAddressPattern.MatchString(address) {
		return "", bundle.ErrInvalidAddress
	}
	return address, nil
}

func normalizeAddresses(addresses []string) ([]string, error) {
	seen := make(map[string]struct{}, len(addresses))
	result := make([]string, 0, len(addresses))
	for _, a := range addresses {
		normalized, err := normalizeAddress(a)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}
	return result, nil
}
