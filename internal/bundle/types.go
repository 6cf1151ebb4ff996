package bundle

import (
	"portfolio-srv/internal/model"
	"portfolio-srv/pkg/paginator"
)

// MaxAddressesPerBundle caps the number of tracked wallets in one bundle.
const MaxAddressesPerBundle = 50

type CreateInput struct {
	Name      string
	Addresses []string
}

type ListInput struct {
	PaginateQuery paginator.PaginateQuery
}

type ListOutput struct {
	Bundles   []*model.Bundle
	Paginator paginator.Paginator
}

type UpdateInput struct {
	BundleID string
	Name     string
}

type AddressInput struct {
	BundleID string
	Address  string
}
