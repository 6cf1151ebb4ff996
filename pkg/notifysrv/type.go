package notifysrv

import (
	"time"

	"portfolio-srv/pkg/httpclient"
)

// NotifyConfig holds configuration for the notification dispatch service
// client.
type NotifyConfig struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration // zero means DefaultTimeout
	HTTPClient httpclient.IClient
	Metrics    *httpclient.Metrics
}

// SendRequest is the payload for dispatching one notification.
type SendRequest struct {
	UserID  string `json:"user_id"`
	Channel string `json:"channel"`
	Target  string `json:"target"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// SendResponse is the dispatch service's acknowledgement.
type SendResponse struct {
	DeliveryID string `json:"delivery_id"`
	Status     string `json:"status"`
}

// DeliveryStatus is the dispatch service's view of one delivery.
type DeliveryStatus struct {
	DeliveryID string `json:"delivery_id"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
}

// notifyImpl implements INotify.
type notifyImpl struct {
	httpClient httpclient.IClient
}
