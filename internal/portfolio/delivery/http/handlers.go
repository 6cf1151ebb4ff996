package http

import (
	"portfolio-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// GetSnapshot returns the current aggregated portfolio for a bundle.
func (h *handler) GetSnapshot(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetSnapshotRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "portfolio.delivery.http.GetSnapshot: processGetSnapshotRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	snapshot, err := h.uc.GetSnapshot(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "portfolio.delivery.http.GetSnapshot: usecase GetSnapshot failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSnapshotResp(snapshot))
}

// RefreshSnapshot forces a re-aggregation of the bundle.
func (h *handler) RefreshSnapshot(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processBundleRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "portfolio.delivery.http.RefreshSnapshot: processBundleRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	snapshot, err := h.uc.RefreshSnapshot(ctx, sc, req.BundleID)
	if err != nil {
		h.l.Errorf(ctx, "portfolio.delivery.http.RefreshSnapshot: usecase RefreshSnapshot failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSnapshotResp(snapshot))
}

// GetHistory returns the bundle's value history.
func (h *handler) GetHistory(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetHistoryRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "portfolio.delivery.http.GetHistory: processGetHistoryRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	points, err := h.uc.GetHistory(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "portfolio.delivery.http.GetHistory: usecase GetHistory failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newHistoryResp(points))
}

// ExportCSV exports the latest snapshot and returns a download URL.
func (h *handler) ExportCSV(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processBundleRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "portfolio.delivery.http.ExportCSV: processBundleRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ExportCSV(ctx, sc, req.toExportInput())
	if err != nil {
		h.l.Errorf(ctx, "portfolio.delivery.http.ExportCSV: usecase ExportCSV failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newExportResp(o))
}
