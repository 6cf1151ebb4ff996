package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"portfolio-srv/internal/bundle"
	"portfolio-srv/internal/bundle/repository"
	"portfolio-srv/internal/model"
	"portfolio-srv/pkg/log"
)

type fakeRepo struct {
	bundles map[string]*model.Bundle
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bundles: make(map[string]*model.Bundle)}
}

func (f *fakeRepo) Create(_ context.Context, opts repository.CreateOptions) (*model.Bundle, error) {
	b := &model.Bundle{
		ID:        opts.ID,
		UserID:    opts.UserID,
		Name:      opts.Name,
		Addresses: opts.Addresses,
	}
	f.bundles[b.ID] = b
	return b, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*model.Bundle, error) {
	b, ok := f.bundles[id]
	if !ok {
		return nil, repository.ErrBundleNotFound
	}
	clone := *b
	return &clone, nil
}

func (f *fakeRepo) List(_ context.Context, opts repository.ListOptions) ([]*model.Bundle, int64, error) {
	var result []*model.Bundle
	for _, b := range f.bundles {
		if b.UserID == opts.UserID {
			result = append(result, b)
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakeRepo) ListAll(_ context.Context) ([]*model.Bundle, error) {
	var result []*model.Bundle
	for _, b := range f.bundles {
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeRepo) Update(_ context.Context, opts repository.UpdateOptions) (*model.Bundle, error) {
	b, ok := f.bundles[opts.ID]
	if !ok {
		return nil, repository.ErrBundleNotFound
	}
	b.Name = opts.Name
	b.Addresses = opts.Addresses
	clone := *b
	return &clone, nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.bundles[id]; !ok {
		return repository.ErrBundleNotFound
	}
	delete(f.bundles, id)
	return nil
}

func testAddress(i int) string {
	return fmt.Sprintf("0x%040x", i+1)
}

func TestBundleCreate(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	t.Run("creates bundle with normalized addresses", func(t *testing.T) {
		uc := New(newFakeRepo(), log.NewNop())

		b, err := uc.Create(ctx, sc, bundle.CreateInput{
			Name:      "  DeFi Main  ",
			Addresses: []string{"0xAbC0000000000000000000000000000000000001", "0xabc0000000000000000000000000000000000001"},
		})
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if b.Name != "DeFi Main" {
			t.Errorf("expected trimmed name, got %q", b.Name)
		}
		if len(b.Addresses) != 1 {
			t.Fatalf("expected duplicate addresses collapsed to 1, got %d", len(b.Addresses))
		}
		if b.Addresses[0] != "0xabc0000000000000000000000000000000000001" {
			t.Errorf("expected lowercased address, got %q", b.Addresses[0])
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		uc := New(newFakeRepo(), log.NewNop())

		_, err := uc.Create(ctx, sc, bundle.CreateInput{Name: "   "})
		if !errors.Is(err, bundle.ErrNameRequired) {
			t.Errorf("expected ErrNameRequired, got %v", err)
		}
	})

	t.Run("rejects malformed address", func(t *testing.T) {
		uc := New(newFakeRepo(), log.NewNop())

		_, err := uc.Create(ctx, sc, bundle.CreateInput{
			Name:      "Bad",
			Addresses: []string{"not-an-address"},
		})
		if !errors.Is(err, bundle.ErrInvalidAddress) {
			t.Errorf("expected ErrInvalidAddress, got %v", err)
		}
	})

	t.Run("rejects too many addresses", func(t *testing.T) {
		uc := New(newFakeRepo(), log.NewNop())

		addresses := make([]string, bundle.MaxAddressesPerBundle+1)
		for i := range addresses {
			addresses[i] = testAddress(i)
		}
		_, err := uc.Create(ctx, sc, bundle.CreateInput{Name: "Big", Addresses: addresses})
		if !errors.Is(err, bundle.ErrTooManyAddresses) {
			t.Errorf("expected ErrTooManyAddresses, got %v", err)
		}
	})
}

func TestBundleOwnership(t *testing.T) {
	ctx := context.Background()
	owner := model.Scope{UserID: "user-1"}
	stranger := model.Scope{UserID: "user-2"}

	repo := newFakeRepo()
	uc := New(repo, log.NewNop())

	b, err := uc.Create(ctx, owner, bundle.CreateInput{Name: "Mine"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	t.Run("owner can read", func(t *testing.T) {
		if _, err := uc.Get(ctx, owner, b.ID); err != nil {
			t.Errorf("Get returned error: %v", err)
		}
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		if _, err := uc.Get(ctx, stranger, b.ID); !errors.Is(err, bundle.ErrNotOwner) {
			t.Errorf("expected ErrNotOwner, got %v", err)
		}
	})

	t.Run("stranger cannot delete", func(t *testing.T) {
		if err := uc.Delete(ctx, stranger, b.ID); !errors.Is(err, bundle.ErrNotOwner) {
			t.Errorf("expected ErrNotOwner, got %v", err)
		}
	})

	t.Run("unknown bundle maps to not found", func(t *testing.T) {
		if _, err := uc.Get(ctx, owner, "missing"); !errors.Is(err, bundle.ErrBundleNotFound) {
			t.Errorf("expected ErrBundleNotFound, got %v", err)
		}
	})
}

func TestBundleAddresses(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	repo := newFakeRepo()
	uc := New(repo, log.NewNop())

	b, err := uc.Create(ctx, sc, bundle.CreateInput{Name: "Wallets"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	addr := testAddress(0)

	t.Run("add address", func(t *testing.T) {
		updated, err := uc.AddAddress(ctx, sc, bundle.AddressInput{BundleID: b.ID, Address: addr})
		if err != nil {
			t.Fatalf("AddAddress returned error: %v", err)
		}
		if !updated.HasAddress(addr) {
			t.Errorf("expected address %q in bundle", addr)
		}
	})

	t.Run("duplicate add is rejected", func(t *testing.T) {
		_, err := uc.AddAddress(ctx, sc, bundle.AddressInput{BundleID: b.ID, Address: addr})
		if !errors.Is(err, bundle.ErrAddressExists) {
			t.Errorf("expected ErrAddressExists, got %v", err)
		}
	})

	t.Run("remove address", func(t *testing.T) {
		updated, err := uc.RemoveAddress(ctx, sc, bundle.AddressInput{BundleID: b.ID, Address: addr})
		if err != nil {
			t.Fatalf("RemoveAddress returned error: %v", err)
		}
		if updated.HasAddress(addr) {
			t.Errorf("expected address %q removed", addr)
		}
	})

	t.Run("removing absent address is rejected", func(t *testing.T) {
		_, err := uc.RemoveAddress(ctx, sc, bundle.AddressInput{BundleID: b.ID, Address: addr})
		if !errors.Is(err, bundle.ErrAddressNotFound) {
			t.Errorf("expected ErrAddressNotFound, got %v", err)
		}
	})
}
