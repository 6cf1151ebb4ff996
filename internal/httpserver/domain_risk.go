package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	bundleRepo "portfolio-srv/internal/bundle/repository"
	"portfolio-srv/internal/middleware"
	portfolioRepo "portfolio-srv/internal/portfolio/repository"
	riskHTTP "portfolio-srv/internal/risk/delivery/http"
	riskRedis "portfolio-srv/internal/risk/repository/redis"
	riskUsecase "portfolio-srv/internal/risk/usecase"
)

func (srv *HTTPServer) setupRiskDomain(
	ctx context.Context,
	r *gin.RouterGroup,
	mw middleware.Middleware,
	bundles bundleRepo.BundleRepository,
	snapshots portfolioRepo.SnapshotRepository,
) {
	cache := riskRedis.New(srv.redisClient, srv.l)

	uc := riskUsecase.New(bundles, snapshots, cache, srv.quantClient, srv.l)

	handler := riskHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Risk domain registered")
}
