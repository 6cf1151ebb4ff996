package postgre

import (
	"database/sql"

	"portfolio-srv/internal/portfolio/repository"
	"portfolio-srv/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

func New(db *sql.DB, l log.Logger) repository.SnapshotRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
