package usecase

import (
	"portfolio-srv/internal/bundle"
	"portfolio-srv/internal/bundle/repository"
	"portfolio-srv/pkg/log"
)

type implUseCase struct {
	repo repository.BundleRepository
	l    log.Logger
}

// New creates a new bundle UseCase implementation.
func New(repo repository.BundleRepository, l log.Logger) bundle.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
