package quantsrv

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout for the quant engine.
	// Risk computations are slow; this is deliberately generous.
	DefaultTimeout = 30 * time.Second
	// DefaultRetries is the default number of retries.
	DefaultRetries = 2
	// DefaultRetryDelay is the base delay for exponential backoff.
	DefaultRetryDelay = 1 * time.Second
)

// API path segments (full URLs built in quantsrv.go).
const (
	PathRiskSummary  = "/api/v1/risk/summary"
	PathValueHistory = "/api/v1/portfolio/history"
	PathPerformance  = "/api/v1/portfolio/performance"
)
