package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"portfolio-srv/internal/middleware"
	notificationHTTP "portfolio-srv/internal/notification/delivery/http"
	notificationPostgre "portfolio-srv/internal/notification/repository/postgre"
	notificationUsecase "portfolio-srv/internal/notification/usecase"
)

func (srv *HTTPServer) setupNotificationDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) {
	repo := notificationPostgre.New(srv.postgresDB, srv.l)

	uc := notificationUsecase.New(repo, srv.notifyCli, srv.encrypter, srv.l)

	handler := notificationHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Notification domain registered")
}
