package usecase

import (
	bundleRepo "portfolio-srv/internal/bundle/repository"
	"portfolio-srv/internal/intent"
	"portfolio-srv/internal/intent/repository"
	"portfolio-srv/pkg/accountsrv"
	"portfolio-srv/pkg/intentsrv"
	"portfolio-srv/pkg/kafka"
	"portfolio-srv/pkg/log"
)

type implUseCase struct {
	repo       repository.IntentRepository
	bundleRepo bundleRepo.BundleRepository
	intentSrv  intentsrv.IIntent
	accountSrv accountsrv.IAccount
	producer   kafka.IProducer
	l          log.Logger
}

// New creates a new intent UseCase implementation. The Kafka producer and the
// account client are optional; without the producer no submission events are
// published, and without the account client the account-service access check
// on Submit is skipped.
func New(
	repo repository.IntentRepository,
	bundles bundleRepo.BundleRepository,
	intentSrv intentsrv.IIntent,
	accountSrv accountsrv.IAccount,
	producer kafka.IProducer,
	l log.Logger,
) intent.UseCase {
	return &implUseCase{
		repo:       repo,
		bundleRepo: bundles,
		intentSrv:  intentSrv,
		accountSrv: accountSrv,
		producer:   producer,
		l:          l,
	}
}
