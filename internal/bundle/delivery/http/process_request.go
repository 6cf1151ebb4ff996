package http

import (
	"portfolio-srv/internal/model"
	"portfolio-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processCreateBundleRequest(c *gin.Context) (createBundleReq, model.Scope, error) {
	var req createBundleReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "bundle.delivery.http.processCreateBundleRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processGetBundleRequest(c *gin.Context) (getBundleReq, model.Scope, error) {
	req := getBundleReq{
		BundleID: c.Param("bundle_id"),
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processListBundlesRequest(c *gin.Context) (listBundlesReq, model.Scope, error) {
	var req listBundlesReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req.PaginateQuery); err != nil {
		h.l.Errorf(ctx, "bundle.delivery.http.processListBundlesRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processUpdateBundleRequest(c *gin.Context) (updateBundleReq, model.Scope, error) {
	var req updateBundleReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "bundle.delivery.http.processUpdateBundleRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, err
	}
	req.BundleID = c.Param("bundle_id")

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processAddAddressRequest(c *gin.Context) (addressReq, model.Scope, error) {
	var req addressReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "bundle.delivery.http.processAddAddressRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, err
	}
	req.BundleID = c.Param("bundle_id")

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processRemoveAddressRequest(c *gin.Context) (addressReq, model.Scope, error) {
	req := addressReq{
		BundleID: c.Param("bundle_id"),
		Address:  c.Param("address"),
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
