package http

import (
	"time"

	"portfolio-srv/internal/model"
	"portfolio-srv/internal/notification"
)

type upsertPreferenceReq struct {
	Channel          string `json:"channel" binding:"required"`
	Target           string `json:"target" binding:"required"`
	RiskAlerts       bool   `json:"risk_alerts"`
	PortfolioReports bool   `json:"portfolio_reports"`
	MinRiskLevel     string `json:"min_risk_level,omitempty"`
}

func (r upsertPreferenceReq) toInput() notification.PreferenceInput {
	return notification.PreferenceInput{
		Channel:          model.NotificationChannel(r.Channel),
		Target:           r.Target,
		RiskAlerts:       r.RiskAlerts,
		PortfolioReports: r.PortfolioReports,
		MinRiskLevel:     model.RiskLevel(r.MinRiskLevel),
	}
}

type deletePreferenceReq struct {
	PreferenceID string
}

type preferenceResp struct {
	ID               string `json:"id"`
	Channel          string `json:"channel"`
	Target           string `json:"target"`
	RiskAlerts       bool   `json:"risk_alerts"`
	PortfolioReports bool   `json:"portfolio_reports"`
	MinRiskLevel     string `json:"min_risk_level"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

type listPreferencesResp struct {
	Preferences []preferenceResp `json:"preferences"`
}

func (h *handler) newPreferenceResp(p *model.NotificationPreference) preferenceResp {
	return preferenceResp{
		ID:               p.ID,
		Channel:          string(p.Channel),
		Target:           p.Target,
		RiskAlerts:       p.RiskAlerts,
		PortfolioReports: p.PortfolioReports,
		MinRiskLevel:     string(p.MinRiskLevel),
		CreatedAt:        p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        p.UpdatedAt.Format(time.RFC3339),
	}
}

func (h *handler) newListPreferencesResp(prefs []*model.NotificationPreference) listPreferencesResp {
	resp := listPreferencesResp{Preferences: make([]preferenceResp, 0, len(prefs))}
	for _, p := range prefs {
		resp.Preferences = append(resp.Preferences, h.newPreferenceResp(p))
	}
	return resp
}
