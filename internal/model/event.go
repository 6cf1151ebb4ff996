package model

import "time"

// Event types published to the portfolio events topic.
const (
	EventSnapshotRequested = "portfolio.snapshot.requested"
	EventIntentSubmitted   = "intent.submitted"
	EventRiskAlert         = "risk.alert"
)

// Event is the envelope for all Kafka events.
type Event struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`

	SnapshotRequested *SnapshotRequestedEvent `json:"snapshot_requested,omitempty"`
	IntentSubmitted   *IntentSubmittedEvent   `json:"intent_submitted,omitempty"`
	RiskAlert         *RiskAlertEvent         `json:"risk_alert,omitempty"`
}

// SnapshotRequestedEvent asks the consumer to refresh a bundle snapshot.
type SnapshotRequestedEvent struct {
	BundleID string `json:"bundle_id"`
	UserID   string `json:"user_id"`
}

// IntentSubmittedEvent asks the consumer to poll the intent status.
type IntentSubmittedEvent struct {
	IntentID string `json:"intent_id"`
	UserID   string `json:"user_id"`
}

// RiskAlertEvent notifies users whose preferences match the level.
type RiskAlertEvent struct {
	BundleID string    `json:"bundle_id"`
	UserID   string    `json:"user_id"`
	Level    RiskLevel `json:"level"`
	Message  string    `json:"message"`
}
