package main

import (
	"context"
	"fmt"
	"time"

	"portfolio-srv/config"
	configKafka "portfolio-srv/config/kafka"
	configMinio "portfolio-srv/config/minio"
	configPostgre "portfolio-srv/config/postgre"
	configRedis "portfolio-srv/config/redis"
	"portfolio-srv/internal/httpserver"
	"portfolio-srv/pkg/accountsrv"
	"portfolio-srv/pkg/debank"
	"portfolio-srv/pkg/discord"
	"portfolio-srv/pkg/encrypter"
	"portfolio-srv/pkg/httpclient"
	"portfolio-srv/pkg/intentsrv"
	pkgJWT "portfolio-srv/pkg/jwt"
	"portfolio-srv/pkg/kafka"
	"portfolio-srv/pkg/log"
	"portfolio-srv/pkg/metrics"
	"portfolio-srv/pkg/notifysrv"
	"portfolio-srv/pkg/quantsrv"
)

func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// 3. Initialize encrypter
	encrypterInstance := encrypter.New(cfg.Encrypter.Key)

	// 4. Initialize PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 5. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 6. Initialize MinIO
	minioClient, err := configMinio.Connect(ctx, cfg.MinIO)
	if err != nil {
		logger.Error(ctx, "Failed to connect to MinIO: ", err)
		return
	}
	logger.Infof(ctx, "MinIO connected successfully to %s", cfg.MinIO.Endpoint)

	// 7. Initialize Kafka producer (optional)
	var producer kafka.IProducer
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err = configKafka.ConnectProducer(cfg.Kafka)
		if err != nil {
			logger.Warnf(ctx, "Kafka producer not available (optional): %v", err)
			producer = nil
		} else {
			defer configKafka.DisconnectProducer()
			logger.Infof(ctx, "Kafka producer initialized")
		}
	}

	// 8. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil // Continue without Discord
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 9. Initialize JWT Manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}
	logger.Infof(ctx, "JWT Manager initialized")

	// 10. Initialize metrics and upstream service clients
	m := metrics.New()
	clientMetrics := httpclient.NewMetrics(m.Registerer())

	debankClient := debank.New(debank.DebankConfig{
		BaseURL:   cfg.Debank.URL,
		AccessKey: cfg.Debank.AccessKey,
		Timeout:   time.Duration(cfg.Debank.Timeout) * time.Second,
		Metrics:   clientMetrics,
	})
	quantClient := quantsrv.New(quantsrv.QuantConfig{
		BaseURL: cfg.Quant.URL,
		Timeout: time.Duration(cfg.Quant.Timeout) * time.Second,
		Metrics: clientMetrics,
	})
	accountClient := accountsrv.New(accountsrv.AccountConfig{
		BaseURL: cfg.Account.URL,
		Timeout: time.Duration(cfg.Account.Timeout) * time.Second,
		Metrics: clientMetrics,
	})
	intentClient := intentsrv.New(intentsrv.IntentConfig{
		BaseURL: cfg.Intent.URL,
		APIKey:  cfg.Intent.APIKey,
		Timeout: time.Duration(cfg.Intent.Timeout) * time.Second,
		Metrics: clientMetrics,
	})
	notifyClient := notifysrv.New(notifysrv.NotifyConfig{
		BaseURL: cfg.Notify.URL,
		APIKey:  cfg.Notify.APIKey,
		Timeout: time.Duration(cfg.Notify.Timeout) * time.Second,
		Metrics: clientMetrics,
	})

	// 11. Initialize HTTP server
	// Main application server that handles all HTTP requests and routes
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Database Configuration
		PostgresDB:  postgresDB,
		RedisClient: redisClient,

		// Storage Configuration
		MinIO: minioClient,

		// Event streaming
		Producer: producer,

		// Upstream service clients
		Debank:  debankClient,
		Quant:   quantClient,
		Account: accountClient,
		Intent:  intentClient,
		Notify:  notifyClient,

		// Authentication & Security Configuration
		Config:     cfg,
		JWTManager: jwtManager,
		Encrypter:  encrypterInstance,

		// Monitoring & Notification Configuration
		Discord: discordClient,
		Metrics: m,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
