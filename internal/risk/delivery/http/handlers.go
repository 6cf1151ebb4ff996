package http

import (
	"time"

	"portfolio-srv/internal/model"
	"portfolio-srv/pkg/response"
	"portfolio-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// GetSummary returns the risk summary for a bundle.
func (h *handler) GetSummary(c *gin.Context) {
	ctx := c.Request.Context()

	bundleID := c.Param("bundle_id")
	sc := scope.GetScopeFromContext(ctx)

	summary, err := h.uc.GetSummary(ctx, sc, bundleID)
	if err != nil {
		h.l.Errorf(ctx, "risk.delivery.http.GetSummary: usecase GetSummary failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSummaryResp(summary))
}

type summaryResp struct {
	BundleID         string  `json:"bundle_id"`
	VolatilityAnnual float64 `json:"volatility_annual"`
	MaxDrawdown      float64 `json:"max_drawdown"`
	SharpeRatio      float64 `json:"sharpe_ratio"`
	Level            string  `json:"level"`
	Source           string  `json:"source"`
	ComputedAt       string  `json:"computed_at"`
}

func (h *handler) newSummaryResp(s *model.RiskSummary) summaryResp {
	return summaryResp{
		BundleID:         s.BundleID,
		VolatilityAnnual: s.VolatilityAnnual,
		MaxDrawdown:      s.MaxDrawdown,
		SharpeRatio:      s.SharpeRatio,
		Level:            string(s.Level),
		Source:           string(s.Source),
		ComputedAt:       s.ComputedAt.Format(time.RFC3339),
	}
}
