package accountsrv

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout for the account
	// service. It sits on the hot auth path; keep it tight.
	DefaultTimeout = 8 * time.Second
	// DefaultRetries is the default number of retries.
	DefaultRetries = 1
	// DefaultRetryDelay is the base delay for exponential backoff.
	DefaultRetryDelay = 500 * time.Millisecond
)

// API path segments (full URLs built in accountsrv.go).
const (
	PathUsers = "/api/v1/users"
)
