package model

import (
	"encoding/json"
	"time"
)

// IntentStatus is the lifecycle state of an execution intent.
type IntentStatus string

const (
	IntentStatusPending   IntentStatus = "PENDING"
	IntentStatusSubmitted IntentStatus = "SUBMITTED"
	IntentStatusExecuting IntentStatus = "EXECUTING"
	IntentStatusCompleted IntentStatus = "COMPLETED"
	IntentStatusFailed    IntentStatus = "FAILED"
)

// terminal intent states never transition again.
func (s IntentStatus) Terminal() bool {
	return s == IntentStatusCompleted || s == IntentStatusFailed
}

// Intent is a user-requested on-chain action routed through the
// intent-execution service.
type Intent struct {
	ID         string
	UserID     string
	BundleID   string
	Kind       string
	Payload    json.RawMessage
	Status     IntentStatus
	ExternalID string
	FailReason string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
