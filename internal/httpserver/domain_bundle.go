package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	bundleHTTP "portfolio-srv/internal/bundle/delivery/http"
	bundleRepo "portfolio-srv/internal/bundle/repository"
	bundlePostgre "portfolio-srv/internal/bundle/repository/postgre"
	bundleUsecase "portfolio-srv/internal/bundle/usecase"
	"portfolio-srv/internal/middleware"
)

func (srv *HTTPServer) setupBundleDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) bundleRepo.BundleRepository {
	repo := bundlePostgre.New(srv.postgresDB, srv.l)

	uc := bundleUsecase.New(repo, srv.l)

	handler := bundleHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Bundle domain registered")
	return repo
}
