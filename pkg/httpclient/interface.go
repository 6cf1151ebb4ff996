package httpclient

import (
	"context"
	"net/http"
)

// IClient defines the interface for the retrying JSON HTTP client shared by
// all upstream service clients. Implementations are safe for concurrent use.
type IClient interface {
	Get(ctx context.Context, endpoint string, out any) error
	Post(ctx context.Context, endpoint string, body, out any) error
	Put(ctx context.Context, endpoint string, body, out any) error
	Patch(ctx context.Context, endpoint string, body, out any) error
	Delete(ctx context.Context, endpoint string, out any) error
	Do(ctx context.Context, method, endpoint string, body, out any, cfg RequestConfig) error
}

// NewClient creates a new HTTP client for one upstream service. Zero config
// values fall back to the package defaults.
func NewClient(cfg ClientConfig) IClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{}
	}

	return &clientImpl{
		config: cfg,
		client: client,
	}
}
