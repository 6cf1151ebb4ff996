package consumer

import (
	"context"
	"database/sql"

	"portfolio-srv/config"
	"portfolio-srv/pkg/debank"
	"portfolio-srv/pkg/discord"
	"portfolio-srv/pkg/encrypter"
	"portfolio-srv/pkg/intentsrv"
	pkgKafka "portfolio-srv/pkg/kafka"
	"portfolio-srv/pkg/log"
	"portfolio-srv/pkg/minio"
	"portfolio-srv/pkg/notifysrv"
	"portfolio-srv/pkg/quantsrv"
	"portfolio-srv/pkg/redis"
)

// ConsumerServer is the Kafka consumer orchestrator. It processes portfolio
// events and runs the periodic refresh and intent polling workers.
type ConsumerServer struct {
	// Core Configuration
	l      log.Logger
	config *config.Config

	// Infrastructure clients
	redisClient   redis.IRedis
	postgresDB    *sql.DB
	minioClient   minio.MinIO
	kafkaProducer pkgKafka.IProducer

	// Upstream service clients
	debankClient debank.IDebank
	quantClient  quantsrv.IQuant
	intentCli    intentsrv.IIntent
	notifyCli    notifysrv.INotify

	// Security
	encrypter encrypter.Encrypter

	// Monitoring & Notification
	discord discord.IDiscord
}

// Config holds all dependencies for the consumer server
type Config struct {
	// Core Configuration
	Logger log.Logger
	Config *config.Config

	// Infrastructure clients
	RedisClient   redis.IRedis
	PostgresDB    *sql.DB
	MinIOClient   minio.MinIO
	KafkaProducer pkgKafka.IProducer

	// Upstream service clients
	Debank debank.IDebank
	Quant  quantsrv.IQuant
	Intent intentsrv.IIntent
	Notify notifysrv.INotify

	// Security
	Encrypter encrypter.Encrypter

	// Monitoring & Notification
	Discord discord.IDiscord
}

// Run starts the consumer server and blocks until context is cancelled.
// It initializes all domain layers, starts the Kafka consumer and the
// periodic workers, and handles graceful shutdown.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	doms, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	consumer, err := srv.startConsumer(ctx, doms)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to start consumer: %v", err)
		return err
	}

	srv.startWorkers(ctx, doms)

	srv.l.Info(ctx, "Consumer Server is running")

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")

	if consumer != nil {
		if err := consumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing Kafka consumer: %v", err)
		}
	}

	srv.l.Info(ctx, "Consumer Server stopped gracefully")
	return nil
}
