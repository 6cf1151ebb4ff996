package http

import (
	"portfolio-srv/internal/middleware"
	"portfolio-srv/internal/notification"
	"portfolio-srv/pkg/discord"
	"portfolio-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      notification.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc notification.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}
