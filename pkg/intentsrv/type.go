package intentsrv

import (
	"encoding/json"
	"time"

	"portfolio-srv/pkg/httpclient"
)

// IntentConfig holds configuration for the intent execution service client.
type IntentConfig struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration // zero means DefaultTimeout
	HTTPClient httpclient.IClient
	Metrics    *httpclient.Metrics
}

// SubmitRequest is the payload for submitting an execution intent.
type SubmitRequest struct {
	UserID   string          `json:"user_id"`
	BundleID string          `json:"bundle_id"`
	Kind     string          `json:"kind"`
	Payload  json.RawMessage `json:"payload"`
}

// SubmitResponse is the execution service's acknowledgement of an intent.
type SubmitResponse struct {
	ExternalID string `json:"intent_id"`
	Status     string `json:"status"`
}

// StatusResponse is the execution service's view of an intent's progress.
type StatusResponse struct {
	ExternalID string `json:"intent_id"`
	Status     string `json:"status"`
	TxHash     string `json:"tx_hash,omitempty"`
	FailReason string `json:"fail_reason,omitempty"`
}

// intentImpl implements IIntent.
type intentImpl struct {
	httpClient httpclient.IClient
}
