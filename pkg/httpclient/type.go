package httpclient

import (
	"net/http"
	"time"
)

// ErrorMapper lets a service client replace generic API error copy with
// domain-specific copy. Returning nil falls back to the generic error.
// This is the only intended extension seam; retry mechanics are shared.
type ErrorMapper func(status int, body []byte) error

// TransformResponse runs on the raw 2xx body before it is decoded.
type TransformResponse func(body []byte) ([]byte, error)

// ClientConfig holds per-service configuration for the HTTP client.
type ClientConfig struct {
	// ServiceName labels logs and metrics, e.g. "debank".
	ServiceName string
	// BaseURL is prepended to every endpoint path.
	BaseURL string

	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration

	// Headers are attached to every request and may be overridden per call.
	Headers map[string]string

	ErrorMapper       ErrorMapper
	TransformResponse TransformResponse

	// HTTPClient overrides the underlying transport. Used by tests.
	HTTPClient *http.Client

	// Metrics records attempt/retry counters when set.
	Metrics *Metrics
}

// RequestConfig carries per-call overrides. Zero values fall back to the
// client defaults.
type RequestConfig struct {
	Headers    map[string]string
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration
	// NoRetry forces a single attempt regardless of Retries.
	NoRetry bool
}

// clientImpl implements IClient.
type clientImpl struct {
	config ClientConfig
	client *http.Client
}
