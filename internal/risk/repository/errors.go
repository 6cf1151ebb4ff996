package repository

import "errors"

var (
	ErrCacheMiss = errors.New("repository: risk summary not in cache")
)
