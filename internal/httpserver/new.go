package httpserver

import (
	"database/sql"
	"errors"

	"portfolio-srv/config"
	"portfolio-srv/pkg/accountsrv"
	"portfolio-srv/pkg/debank"
	"portfolio-srv/pkg/discord"
	"portfolio-srv/pkg/encrypter"
	"portfolio-srv/pkg/intentsrv"
	pkgJWT "portfolio-srv/pkg/jwt"
	"portfolio-srv/pkg/kafka"
	"portfolio-srv/pkg/log"
	"portfolio-srv/pkg/metrics"
	"portfolio-srv/pkg/minio"
	"portfolio-srv/pkg/notifysrv"
	"portfolio-srv/pkg/quantsrv"
	pkgRedis "portfolio-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis

	// Storage Configuration
	minioClient minio.MinIO

	// Event streaming (optional)
	producer kafka.IProducer

	// Upstream service clients
	debankClient debank.IDebank
	quantClient  quantsrv.IQuant
	accountCli   accountsrv.IAccount
	intentCli    intentsrv.IIntent
	notifyCli    notifysrv.INotify

	// Authentication & Security Configuration
	config     *config.Config
	jwtManager pkgJWT.IManager
	encrypter  encrypter.Encrypter

	// Monitoring & Notification Configuration
	discord discord.IDiscord
	metrics *metrics.Metrics
}

type Config struct {
	// Server Configuration
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis

	// Storage Configuration
	MinIO minio.MinIO

	// Event streaming (optional)
	Producer kafka.IProducer

	// Upstream service clients
	Debank  debank.IDebank
	Quant   quantsrv.IQuant
	Account accountsrv.IAccount
	Intent  intentsrv.IIntent
	Notify  notifysrv.INotify

	// Authentication & Security Configuration
	Config     *config.Config
	JWTManager pkgJWT.IManager
	Encrypter  encrypter.Encrypter

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
	Metrics *metrics.Metrics
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Database Configuration
		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,

		// Storage Configuration
		minioClient: cfg.MinIO,

		// Event streaming
		producer: cfg.Producer,

		// Upstream service clients
		debankClient: cfg.Debank,
		quantClient:  cfg.Quant,
		accountCli:   cfg.Account,
		intentCli:    cfg.Intent,
		notifyCli:    cfg.Notify,

		// Authentication & Security Configuration
		config:     cfg.Config,
		jwtManager: cfg.JWTManager,
		encrypter:  cfg.Encrypter,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
		metrics: cfg.Metrics,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}

	// Storage Configuration
	if srv.minioClient == nil {
		return errors.New("minio is required")
	}

	// Upstream service clients
	if srv.debankClient == nil {
		return errors.New("debank client is required")
	}
	if srv.intentCli == nil {
		return errors.New("intent client is required")
	}
	if srv.notifyCli == nil {
		return errors.New("notify client is required")
	}
	// quant and account clients are optional; risk falls back to the
	// local engine and the account service is only consulted lazily.

	// Authentication & Security Configuration
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}

	// Monitoring & Notification Configuration (discord and producer are optional)

	return nil
}
