package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-srv/config"
	configKafka "portfolio-srv/config/kafka"
	configMinio "portfolio-srv/config/minio"
	configPostgre "portfolio-srv/config/postgre"
	configRedis "portfolio-srv/config/redis"
	"portfolio-srv/internal/consumer"
	"portfolio-srv/pkg/debank"
	"portfolio-srv/pkg/discord"
	"portfolio-srv/pkg/encrypter"
	"portfolio-srv/pkg/httpclient"
	"portfolio-srv/pkg/intentsrv"
	"portfolio-srv/pkg/log"
	"portfolio-srv/pkg/metrics"
	"portfolio-srv/pkg/notifysrv"
	"portfolio-srv/pkg/quantsrv"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Portfolio Consumer Service...")

	// Kafka Producer (for publishing events)
	kafkaProducer, err := configKafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Kafka producer: %v", err)
		return
	}
	defer configKafka.DisconnectProducer()
	logger.Info(ctx, "Kafka producer initialized")

	// Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Info(ctx, "Redis client initialized")

	// PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Info(ctx, "PostgreSQL client initialized")

	// MinIO
	minioClient, err := configMinio.Connect(ctx, cfg.MinIO)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to MinIO: %v", err)
		return
	}
	defer configMinio.Disconnect()
	logger.Info(ctx, "MinIO client initialized")

	// Upstream service clients
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

	// Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil
	} else {
		logger.Info(ctx, "Discord client initialized")
	}

	// Consumer server
	srv, err := consumer.New(consumer.Config{
		Logger:        logger,
		Config:        cfg,
		RedisClient:   redisClient,
		PostgresDB:    postgresDB,
		MinIOClient:   minioClient,
		KafkaProducer: kafkaProducer,
		Debank:        debankClient,
		Quant:         quantClient,
		Intent:        intentClient,
		Notify:        notifyClient,
		Encrypter:     encrypter.New(cfg.Encrypter.Key),
		Discord:       discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create consumer server: %v", err)
		return
	}

	// Run consumer server
	logger.Info(ctx, "Consumer server starting...")
	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Consumer server error: %v", err)
		return
	}

	logger.Info(ctx, "Consumer server stopped gracefully")
}
