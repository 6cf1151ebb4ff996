package intentsrv

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout for the intent
	// execution service.
	DefaultTimeout = 15 * time.Second
	// DefaultRetries is the default number of retries. Submission is not
	// idempotent upstream, so callers pass NoRetry for POSTs; this default
	// only covers status polls.
	DefaultRetries = 2
	// DefaultRetryDelay is the base delay for exponential backoff.
	DefaultRetryDelay = 1 * time.Second
)

// API path segments (full URLs built in intentsrv.go).
const (
	PathIntents = "/api/v1/intents"
)
