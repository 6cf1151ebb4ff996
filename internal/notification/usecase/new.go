package usecase

import (
	"portfolio-srv/internal/notification"
	"portfolio-srv/internal/notification/repository"
	"portfolio-srv/pkg/encrypter"
	"portfolio-srv/pkg/log"
	"portfolio-srv/pkg/notifysrv"
)

type implUseCase struct {
	repo      repository.PreferenceRepository
	notifySrv notifysrv.INotify
	encrypter encrypter.Encrypter
	l         log.Logger
}

// New creates a new notification UseCase implementation.
func New(
	repo repository.PreferenceRepository,
	notifySrv notifysrv.INotify,
	enc encrypter.Encrypter,
	l log.Logger,
) notification.UseCase {
	return &implUseCase{
		repo:      repo,
		notifySrv: notifySrv,
		encrypter: enc,
		l:         l,
	}
}
