package model

import "time"

// NotificationChannel is how a notification is delivered.
type NotificationChannel string

const (
	ChannelEmail   NotificationChannel = "email"
	ChannelWebhook NotificationChannel = "webhook"
	ChannelPush    NotificationChannel = "push"
)

// NotificationPreference controls which alerts a user receives and where.
// Target is stored encrypted at rest (webhook URLs carry secrets).
type NotificationPreference struct {
	ID               string
	UserID           string
	Channel          NotificationChannel
	Target           string
	RiskAlerts       bool
	PortfolioReports bool
	MinRiskLevel     RiskLevel
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
