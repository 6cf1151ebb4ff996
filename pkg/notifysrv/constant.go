package notifysrv

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout for the notification
	// dispatch service.
	DefaultTimeout = 10 * time.Second
	// DefaultRetries is the default number of retries.
	DefaultRetries = 3
	// DefaultRetryDelay is the base delay for exponential backoff.
	DefaultRetryDelay = 1 * time.Second
)

// API path segments (full URLs built in notifysrv.go).
const (
	PathNotifications = "/api/v1/notifications"
	PathDeliveries    = "/api/v1/deliveries"
)
