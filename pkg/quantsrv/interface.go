package quantsrv

import (
	"context"
	"encoding/json"
	"fmt"

	"portfolio-srv/pkg/httpclient"
)

// IQuant defines the interface for the analytics/risk quant engine.
// Implementations are safe for concurrent use.
type IQuant interface {
	GetRiskSummary(ctx context.Context, bundleID string) (*RiskSummary, error)
	GetValueHistory(ctx context.Context, bundleID string, days int) ([]ValuePoint, error)
	GetPerformance(ctx context.Context, bundleID string) (*Performance, error)
}

// New creates a new quant engine client. Returns the interface.
func New(cfg QuantConfig) IQuant {
	if cfg.HTTPClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		cfg.HTTPClient = httpclient.NewClient(httpclient.ClientConfig{
			ServiceName:       "quant-engine",
			BaseURL:           cfg.BaseURL,
			Timeout:           timeout,
			Retries:           DefaultRetries,
			RetryDelay:        DefaultRetryDelay,
			TransformResponse: unwrapEnvelope,
			Metrics:           cfg.Metrics,
		})
	}
	return &quantImpl{httpClient: cfg.HTTPClient}
}

// unwrapEnvelope strips the quant engine's {"data": ...} response envelope.
// Responses without the envelope pass through unchanged.
func unwrapEnvelope(body []byte) ([]byte, error) {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("quant engine returned malformed body: %w", err)
	}
	if len(envelope.Data) == 0 {
		return body, nil
	}
	return envelope.Data, nil
}
