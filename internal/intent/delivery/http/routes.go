package http

import (
	"portfolio-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/intents")
	api.Use(mw.Auth())
	{
		api.POST("", h.SubmitIntent)
		api.GET("", h.ListIntents)
		api.GET("/:intent_id", h.GetIntent)
	}
}
