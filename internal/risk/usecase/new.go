package usecase

import (
	bundleRepo "portfolio-srv/internal/bundle/repository"
	portfolioRepo "portfolio-srv/internal/portfolio/repository"
	"portfolio-srv/internal/risk"
	"portfolio-srv/internal/risk/repository"
	"portfolio-srv/pkg/log"
	"portfolio-srv/pkg/quantsrv"
)

type implUseCase struct {
	bundleRepo   bundleRepo.BundleRepository
	snapshotRepo portfolioRepo.SnapshotRepository
	cache        repository.CacheRepository
	quant        quantsrv.IQuant
	l            log.Logger
}

// New creates a new risk UseCase implementation. The quant client is
// optional; without it every summary comes from the local engine.
func New(
	bundles bundleRepo.BundleRepository,
	snapshots portfolioRepo.SnapshotRepository,
	cache repository.CacheRepository,
	quant quantsrv.IQuant,
	l log.Logger,
) risk.UseCase {
	return &implUseCase{
		bundleRepo:   bundles,
		snapshotRepo: snapshots,
		cache:        cache,
		quant:        quant,
		l:            l,
	}
}
