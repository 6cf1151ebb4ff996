package notifysrv

import (
	"context"

	"portfolio-srv/pkg/httpclient"
)

// INotify defines the interface for the notification dispatch service client.
// Implementations are safe for concurrent use.
type INotify interface {
	SendNotification(ctx context.Context, req SendRequest) (*SendResponse, error)
	GetDeliveryStatus(ctx context.Context, deliveryID string) (*DeliveryStatus, error)
}

// New creates a new notification dispatch service client. Returns the
// interface.
func New(cfg NotifyConfig) INotify {
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
			ServiceName: "notify",
			BaseURL:     cfg.BaseURL,
			Timeout:     timeout,
			Retries:     DefaultRetries,
			RetryDelay:  DefaultRetryDelay,
			Headers:     headers,
			Metrics:     cfg.Metrics,
		})
	}
	return &notifyImpl{httpClient: cfg.HTTPClient}
}
