package http

import (
	"portfolio-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// CreateBundle creates a new wallet bundle for the caller.
func (h *handler) CreateBundle(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateBundleRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "bundle.delivery.http.CreateBundle: processCreateBundleRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	b, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "bundle.delivery.http.CreateBundle: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newBundleResp(b))
}

// GetBundle returns one bundle owned by the caller.
func (h *handler) GetBundle(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetBundleRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "bundle.delivery.http.GetBundle: processGetBundleRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	b, err := h.uc.Get(ctx, sc, req.BundleID)
	if err != nil {
		h.l.Errorf(ctx, "bundle.delivery.http.GetBundle: usecase Get failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newBundleResp(b))
}

// ListBundles returns the caller's bundles with pagination.
func (h *handler) ListBundles(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListBundlesRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "bundle.delivery.http.ListBundles: processListBundlesRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "bundle.delivery.http.ListBundles: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListBundlesResp(o))
}

// UpdateBundle renames a bundle.
func (h *handler) UpdateBundle(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateBundleRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "bundle.delivery.http.UpdateBundle: processUpdateBundleRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	b, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "bundle.delivery.http.UpdateBundle: usecase Update failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newBundleResp(b))
}

// DeleteBundle removes a bundle and its stored snapshots.
func (h *handler) DeleteBundle(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetBundleRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "bundle.delivery.http.DeleteBundle: processGetBundleRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.Delete(ctx, sc, req.BundleID); err != nil {
		h.l.Errorf(ctx, "bundle.delivery.http.DeleteBundle: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}

// AddAddress appends one wallet address to a bundle.
func (h *handler) AddAddress(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processAddAddressRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "bundle.delivery.http.AddAddress: processAddAddressRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	b, err := h.uc.AddAddress(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "bundle.delivery.http.AddAddress: usecase AddAddress failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newBundleResp(b))
}

// RemoveAddress removes one wallet address from a bundle.
func (h *handler) RemoveAddress(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processRemoveAddressRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "bundle.delivery.http.RemoveAddress: processRemoveAddressRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	b, err := h.uc.RemoveAddress(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "bundle.delivery.http.RemoveAddress: usecase RemoveAddress failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newBundleResp(b))
}
