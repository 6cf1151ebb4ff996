package postgre

import (
	"database/sql"

	"portfolio-srv/internal/bundle/repository"
	"portfolio-srv/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

func New(db *sql.DB, l log.Logger) repository.BundleRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
