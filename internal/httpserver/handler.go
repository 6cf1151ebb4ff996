package httpserver

import (
	"context"

	"portfolio-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.jwtManager)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	ctx := context.Background()
	root := srv.gin.Group("")

	// Bundle is the root domain; its repository is shared by the domains
	// that resolve ownership through it.
	bundleRepo := srv.setupBundleDomain(ctx, root, mw)
	snapshotRepo := srv.setupPortfolioDomain(ctx, root, mw, bundleRepo)
	srv.setupRiskDomain(ctx, root, mw, bundleRepo, snapshotRepo)
	srv.setupIntentDomain(ctx, root, mw, bundleRepo)
	srv.setupNotificationDomain(ctx, root, mw)

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))

	corsConfig := middleware.DefaultCORSConfig(srv.environment, srv.config.CORS.AllowedOrigins)
	srv.gin.Use(middleware.CORS(corsConfig))

	// Log CORS mode for visibility
	ctx := context.Background()
	if srv.environment == "production" {
		srv.l.Infof(ctx, "CORS mode: production (strict origins only)")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s (permissive)", srv.environment)
	}

	if srv.metrics != nil {
		srv.gin.Use(srv.metrics.GinMiddleware())
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.metrics != nil {
		srv.gin.GET("/metrics", func(c *gin.Context) {
			srv.metrics.Handler().ServeHTTP(c.Writer, c.Request)
		})
	}
}
