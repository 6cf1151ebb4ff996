package notification

import (
	"context"

	"portfolio-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	UpsertPreference(ctx context.Context, sc model.Scope, input PreferenceInput) (*model.NotificationPreference, error)
	ListPreferences(ctx context.Context, sc model.Scope) ([]*model.NotificationPreference, error)
	DeletePreference(ctx context.Context, sc model.Scope, preferenceID string) error

	// DispatchRiskAlert sends the alert to every matching preference of the
	// user. Used by the consumer; no owner check.
	DispatchRiskAlert(ctx context.Context, event model.RiskAlertEvent) error
}
