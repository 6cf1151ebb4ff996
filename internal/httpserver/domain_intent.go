package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	bundleRepo "portfolio-srv/internal/bundle/repository"
	intentHTTP "portfolio-srv/internal/intent/delivery/http"
	intentPostgre "portfolio-srv/internal/intent/repository/postgre"
	intentUsecase "portfolio-srv/internal/intent/usecase"
	"portfolio-srv/internal/middleware"
)

func (srv *HTTPServer) setupIntentDomain(
	ctx context.Context,
	r *gin.RouterGroup,
	mw middleware.Middleware,
	bundles bundleRepo.BundleRepository,
) {
	repo := intentPostgre.New(srv.postgresDB, srv.l)

	uc := intentUsecase.New(repo, bundles, srv.intentCli, srv.accountCli, srv.producer, srv.l)

	handler := intentHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Intent domain registered")
}
