package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	bundleRepo "portfolio-srv/internal/bundle/repository"
	"portfolio-srv/internal/middleware"
	portfolioHTTP "portfolio-srv/internal/portfolio/delivery/http"
	portfolioRepo "portfolio-srv/internal/portfolio/repository"
	portfolioPostgre "portfolio-srv/internal/portfolio/repository/postgre"
	portfolioRedis "portfolio-srv/internal/portfolio/repository/redis"
	portfolioUsecase "portfolio-srv/internal/portfolio/usecase"
)

func (srv *HTTPServer) setupPortfolioDomain(
	ctx context.Context,
	r *gin.RouterGroup,
	mw middleware.Middleware,
	bundles bundleRepo.BundleRepository,
) portfolioRepo.SnapshotRepository {
	repo := portfolioPostgre.New(srv.postgresDB, srv.l)
	cache := portfolioRedis.New(srv.redisClient, srv.l)

	uc := portfolioUsecase.New(bundles, repo, cache, srv.debankClient, srv.minioClient, srv.producer, srv.l, portfolioUsecase.Config{
		ExportBucket: srv.config.MinIO.ExportBucket,
	})

	handler := portfolioHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Portfolio domain registered")
	return repo
}
