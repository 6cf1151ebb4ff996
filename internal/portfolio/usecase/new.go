package usecase

import (
	bundleRepo "portfolio-srv/internal/bundle/repository"
	"portfolio-srv/internal/portfolio"
	"portfolio-srv/internal/portfolio/repository"
	"portfolio-srv/pkg/debank"
	"portfolio-srv/pkg/kafka"
	"portfolio-srv/pkg/log"
	"portfolio-srv/pkg/minio"
)

const defaultExportBucket = "portfolio-exports"

// Config holds configuration for portfolio aggregation and export.
type Config struct {
	ExportBucket string
}

type implUseCase struct {
	bundleRepo bundleRepo.BundleRepository
	repo       repository.SnapshotRepository
	cache      repository.CacheRepository
	debank     debank.IDebank
	minio      minio.MinIO
	producer   kafka.IProducer
	l          log.Logger
	config     Config
}

// New creates a new portfolio UseCase implementation. The Kafka producer is
// optional; without it RefreshSnapshot still aggregates synchronously.
func New(
	bundles bundleRepo.BundleRepository,
	repo repository.SnapshotRepository,
	cache repository.CacheRepository,
	debankClient debank.IDebank,
	minioClient minio.MinIO,
	producer kafka.IProducer,
	l log.Logger,
	cfg Config,
) portfolio.UseCase {
	if cfg.ExportBucket == "" {
		cfg.ExportBucket = defaultExportBucket
	}

	return &implUseCase{
		bundleRepo: bundles,
		repo:       repo,
		cache:      cache,
		debank:     debankClient,
		minio:      minioClient,
		producer:   producer,
		l:          l,
		config:     cfg,
	}
}
