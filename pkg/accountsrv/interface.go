package accountsrv

import (
	"context"

	"portfolio-srv/pkg/httpclient"
)

// IAccount defines the interface for the account/user service client.
// Implementations are safe for concurrent use.
type IAccount interface {
	GetUser(ctx context.Context, userID string) (*User, error)
	ValidateUserAccess(ctx context.Context, userID, resourceID string) (bool, error)
}

// New creates a new account service client. Returns the interface.
func New(cfg AccountConfig) IAccount {
	if cfg.HTTPClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		cfg.HTTPClient = httpclient.NewClient(httpclient.ClientConfig{
			ServiceName: "account",
			BaseURL:     cfg.BaseURL,
			Timeout:     timeout,
			Retries:     DefaultRetries,
			RetryDelay:  DefaultRetryDelay,
			Metrics:     cfg.Metrics,
		})
	}
	return &accountImpl{httpClient: cfg.HTTPClient}
}
