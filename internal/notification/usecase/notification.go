package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"portfolio-srv/internal/model"
	"portfolio-srv/internal/notification"
	"portfolio-srv/internal/notification/repository"
	"portfolio-srv/pkg/notifysrv"
)

// UpsertPreference stores the caller's delivery preference for one channel.
// Targets carry secrets (webhook URLs, device tokens) and are encrypted at
// rest.
func (uc *implUseCase) UpsertPreference(ctx context.Context, sc model.Scope, input notification.PreferenceInput) (*model.NotificationPreference, error) {
	if !isValidChannel(input.Channel) {
		return nil, notification.ErrInvalidChannel
	}
	target := strings.TrimSpace(input.Target)
	if target == "" {
		return nil, notification.ErrTargetRequired
	}

	encrypted, err := uc.encrypter.Encrypt(target)
	if err != nil {
		uc.l.Errorf(ctx, "notification.usecase.UpsertPreference: Failed to encrypt target: %v", err)
		return nil, err
	}

	minLevel := input.MinRiskLevel
	if minLevel == "" {
		minLevel = model.RiskLevelHigh
	}

	saved, err := uc.repo.Upsert(ctx, &model.NotificationPreference{
		ID:               uuid.New().String(),
		UserID:           sc.UserID,
		Channel:          input.Channel,
		Target:           encrypted,
		RiskAlerts:       input.RiskAlerts,
		PortfolioReports: input.PortfolioReports,
		MinRiskLevel:     minLevel,
	})
	if err != nil {
		uc.l.Errorf(ctx, "notification.usecase.UpsertPreference: Failed to save preference: %v", err)
		return nil, err
	}

	saved.Target = maskTarget(target)
	return saved, nil
}

// ListPreferences returns the caller's preferences with masked targets.
func (uc *implUseCase) ListPreferences(ctx context.Context, sc model.Scope) ([]*model.NotificationPreference, error) {
	prefs, err := uc.repo.ListByUser(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "notification.usecase.ListPreferences: Failed to list preferences: %v", err)
		return nil, err
	}

	for _, pref := range prefs {
		target, err := uc.encrypter.Decrypt(pref.Target)
		if err != nil {
			uc.l.Errorf(ctx, "notification.usecase.ListPreferences: Failed to decrypt target: %v", err)
			pref.Target = ""
			continue
		}
		pref.Target = maskTarget(target)
	}
	return prefs, nil
}

// DeletePreference removes one of the caller's preferences.
func (uc *implUseCase) DeletePreference(ctx context.Context, sc model.Scope, preferenceID string) error {
	pref, err := uc.repo.GetByID(ctx, preferenceID)
	if err != nil {
		if err == repository.ErrPreferenceNotFound {
			return notification.ErrPreferenceNotFound
		}
		uc.l.Errorf(ctx, "notification.usecase.DeletePreference: Failed to get preference: %v", err)
		return err
	}
	if pref.UserID != sc.UserID {
		return notification.ErrNotOwner
	}

	if err := uc.repo.Delete(ctx, preferenceID); err != nil {
		uc.l.Errorf(ctx, "notification.usecase.DeletePreference: Failed to delete preference: %v", err)
		return err
	}
	return nil
}

// DispatchRiskAlert fans the alert out to every preference of the user that
// opted into risk alerts at or below the event's level. Individual delivery
// failures are logged and do not stop the fan-out.
func (uc *implUseCase) DispatchRiskAlert(ctx context.Context, event model.RiskAlertEvent) error {
	prefs, err := uc.repo.ListByUser(ctx, event.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "notification.usecase.DispatchRiskAlert: Failed to list preferences: %v", err)
		return err
	}

	var attempted, failures int
	for _, pref := range prefs {
		if !pref.RiskAlerts || event.Level.Rank() < pref.MinRiskLevel.Rank() {
			continue
		}
		attempted++

		target, err := uc.encrypter.Decrypt(pref.Target)
		if err != nil {
			uc.l.Errorf(ctx, "notification.usecase.DispatchRiskAlert: Failed to decrypt target for preference %s: %v", pref.ID, err)
			failures++
			continue
		}

		_, err = uc.notifySrv.SendNotification(ctx, notifysrv.SendRequest{
			UserID:  event.UserID,
			Channel: string(pref.Channel),
			Target:  target,
			Subject: fmt.Sprintf("Portfolio risk is %s", event.Level),
			Body:    event.Message,
		})
		if err != nil {
			uc.l.Errorf(ctx, "notification.usecase.DispatchRiskAlert: Delivery failed for preference %s: %v", pref.ID, err)
			failures++
		}
	}

	if attempted > 0 && failures == attempted {
		return notification.ErrDispatchFailed
	}
	return nil
}

func isValidChannel(channel model.NotificationChannel) bool {
	switch channel {
	case model.ChannelEmail, model.ChannelWebhook, model.ChannelPush:
		return true
	}
	return false
}

// maskTarget hides most of the target so listings never leak full secrets.
// Rune-based so multibyte targets are never split mid-character.
func maskTarget(target string) string {
	runes := []rune(target)
	if len(runes) <= 8 {
		return "****"
	}
	return string(runes[:4]) + "****" + string(runes[len(runes)-4:])
}
