package postgre

import (
	"database/sql"

	"portfolio-srv/internal/intent/repository"
	"portfolio-srv/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

func New(db *sql.DB, l log.Logger) repository.IntentRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
