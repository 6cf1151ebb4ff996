package redis

import (
	"errors"

	goredis "github.com/redis/go-redis/v9"
)

var (
	// ErrHostRequired is returned when no host is configured.
	ErrHostRequired = errors.New("redis host is required")
	// ErrInvalidPort is returned when the port is out of range.
	ErrInvalidPort = errors.New("redis port must be between 1 and 65535")
)

// IsNotFound reports whether err means the key does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, goredis.Nil)
}
