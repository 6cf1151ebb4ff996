package http

import (
	"portfolio-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/notification-preferences")
	api.Use(mw.Auth())
	{
		api.PUT("", h.UpsertPreference)
		api.GET("", h.ListPreferences)
		api.DELETE("/:preference_id", h.DeletePreference)
	}
}
