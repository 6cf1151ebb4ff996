package debank

import (
	"context"

	"portfolio-srv/pkg/httpclient"
)

// IDebank defines the interface for the third-party DeFi data aggregator.
// Implementations are safe for concurrent use.
type IDebank interface {
	GetTokenBalances(ctx context.Context, address string) ([]Token, error)
	GetProtocolPositions(ctx context.Context, address string) ([]Protocol, error)
	GetTotalBalance(ctx context.Context, address string) (*TotalBalance, error)
}

// New creates a new aggregator client. Returns the interface.
func New(cfg DebankConfig) IDebank {
	if cfg.HTTPClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		headers := map[string]string{}
		if cfg.AccessKey != "" {
			headers["AccessKey"] = cfg.AccessKey
		}
		cfg.HTTPClient = httpclient.NewClient(httpclient.ClientConfig{
			ServiceName: "debank",
			BaseURL:     cfg.BaseURL,
			Timeout:     timeout,
			Retries:     DefaultRetries,
			RetryDelay:  DefaultRetryDelay,
			Headers:     headers,
			ErrorMapper: mapError,
			Metrics:     cfg.Metrics,
		})
	}
	return &debankImpl{httpClient: cfg.HTTPClient}
}
