package notification

import "portfolio-srv/internal/model"

type PreferenceInput struct {
	Channel          model.NotificationChannel
	Target           string
	RiskAlerts       bool
	PortfolioReports bool
	MinRiskLevel     model.RiskLevel
}
