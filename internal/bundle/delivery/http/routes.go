package http

import (
	"portfolio-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/bundles")
	api.Use(mw.Auth())
	{
		api.POST("", h.CreateBundle)
		api.GET("", h.ListBundles)
		api.GET("/:bundle_id", h.GetBundle)
		api.PUT("/:bundle_id", h.UpdateBundle)
		api.DELETE("/:bundle_id", h.DeleteBundle)
		api.POST("/:bundle_id/addresses", h.AddAddress)
		api.DELETE("/:bundle_id/addresses/:address", h.RemoveAddress)
	}
}
