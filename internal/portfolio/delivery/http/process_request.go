package http

import (
	"strconv"

	"portfolio-srv/internal/model"
	"portfolio-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processGetSnapshotRequest(c *gin.Context) (getSnapshotReq, model.Scope, error) {
	req := getSnapshotReq{
		BundleID:     c.Param("bundle_id"),
		ForceRefresh: c.Query("refresh") == "true",
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processBundleRequest(c *gin.Context) (bundleReq, model.Scope, error) {
	req := bundleReq{
		BundleID: c.Param("bundle_id"),
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processGetHistoryRequest(c *gin.Context) (getHistoryReq, model.Scope, error) {
	req := getHistoryReq{
		BundleID: c.Param("bundle_id"),
	}

	ctx := c.Request.Context()
	if daysStr := c.Query("days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			h.l.Errorf(ctx, "portfolio.delivery.http.processGetHistoryRequest: Invalid days %q: %v", daysStr, err)
			return req, model.Scope{}, err
		}
		req.Days = days
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}
