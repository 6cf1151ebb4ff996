package http

import (
	"portfolio-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/bundles/:bundle_id/portfolio")
	api.Use(mw.Auth())
	{
		api.GET("", h.GetSnapshot)
		api.POST("/refresh", h.RefreshSnapshot)
		api.GET("/history", h.GetHistory)
		api.POST("/export", h.ExportCSV)
	}
}
