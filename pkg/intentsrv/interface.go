package intentsrv

import (
	"context"

	"portfolio-srv/pkg/httpclient"
)

// IIntent defines the interface for the intent execution service client.
// Implementations are safe for concurrent use.
type IIntent interface {
	SubmitIntent(ctx context.Context, req SubmitRequest) (*SubmitResponse, error)
	GetIntentStatus(ctx context.Context, externalID string) (*StatusResponse, error)
}

// New creates a new intent execution service client. Returns the interface.
func New(cfg IntentConfig) IIntent {
	if cfg.HTTPClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		headers := map[string]string{}
		if cfg.APIKey != "" {
			headers["Authorization"] = "Bearer " + cfg.APIKey
		}
		cfg.HTTPClient = httpclient.NewClient(httpclient.ClientConfig{
			ServiceName: "intent-execution",
			BaseURL:     cfg.BaseURL,
			Timeout:     timeout,
			Retries:     DefaultRetries,
			RetryDelay:  DefaultRetryDelay,
			Headers:     headers,
			Metrics:     cfg.Metrics,
		})
	}
	return &intentImpl{httpClient: cfg.HTTPClient}
}
