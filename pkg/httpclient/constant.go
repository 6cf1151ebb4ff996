package httpclient

import "time"

const (
	// DefaultTimeout is the default per-attempt timeout.
	DefaultTimeout = 30 * time.Second
	// DefaultRetries is the default number of retries after the first attempt.
	DefaultRetries = 3
	// DefaultRetryDelay is the base delay for exponential backoff.
	DefaultRetryDelay = 1 * time.Second
	// maxRetryDelay caps the backoff multiplier.
	maxRetryDelay = 30 * time.Second
)

// DefaultConfig returns a ClientConfig with default timeout and retry policy.
func DefaultConfig(serviceName, baseURL string) ClientConfig {
	return ClientConfig{
		ServiceName: serviceName,
		BaseURL:     baseURL,
		Timeout:     DefaultTimeout,
		Retries:     DefaultRetries,
		RetryDelay:  DefaultRetryDelay,
	}
}
