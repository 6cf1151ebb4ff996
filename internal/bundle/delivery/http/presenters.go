package http

import (
	"time"

	"portfolio-srv/internal/bundle"
	"portfolio-srv/internal/model"
	"portfolio-srv/pkg/paginator"
)

type createBundleReq struct {
	Name      string   `json:"name" binding:"required"`
	Addresses []string `json:"addresses,omitempty"`
}

func (r createBundleReq) toInput() bundle.CreateInput {
	return bundle.CreateInput{
		Name:      r.Name,
		Addresses: r.Addresses,
	}
}

type getBundleReq struct {
	BundleID string
}

type listBundlesReq struct {
	PaginateQuery paginator.PaginateQuery
}

func (r listBundlesReq) toInput() bundle.ListInput {
	return bundle.ListInput{
		PaginateQuery: r.PaginateQuery,
	}
}

type updateBundleReq struct {
	BundleID string `json:"-"`
	Name     string `json:"name" binding:"required"`
}

func (r updateBundleReq) toInput() bundle.UpdateInput {
	return bundle.UpdateInput{
		BundleID: r.BundleID,
		Name:     r.Name,
	}
}

type addressReq struct {
	BundleID string `json:"-"`
	Address  string `json:"address" binding:"required"`
}

func (r addressReq) toInput() bundle.AddressInput {
	return bundle.AddressInput{
		BundleID: r.BundleID,
		Address:  r.Address,
	}
}

type bundleResp struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Addresses []string `json:"addresses"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

type listBundlesResp struct {
	Bundles   []bundleResp                `json:"bundles"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newBundleResp(b *model.Bundle) bundleResp {
	addresses := b.Addresses
	if addresses == nil {
		addresses = []string{}
	}
	return bundleResp{
		ID:        b.ID,
		Name:      b.Name,
		Addresses: addresses,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}
}

func (h *handler) newListBundlesResp(o bundle.ListOutput) listBundlesResp {
	bundles := make([]bundleResp, 0, len(o.Bundles))
	for _, b := range o.Bundles {
		bundles = append(bundles, h.newBundleResp(b))
	}
	return listBundlesResp{
		Bundles:   bundles,
		Paginator: o.Paginator.ToResponse(),
	}
}
