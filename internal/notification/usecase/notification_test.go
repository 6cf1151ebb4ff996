package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"portfolio-srv/internal/model"
	"portfolio-srv/internal/notification"
	"portfolio-srv/internal/notification/repository"
	"portfolio-srv/pkg/log"
	"portfolio-srv/pkg/notifysrv"
)

type fakePrefRepo struct {
	prefs map[string]*model.NotificationPreference
}

func newFakePrefRepo() *fakePrefRepo {
	return &fakePrefRepo{prefs: make(map[string]*model.NotificationPreference)}
}

func (f *fakePrefRepo) Upsert(_ context.Context, pref *model.NotificationPreference) (*model.NotificationPreference, error) {
	for _, existing := range f.prefs {
		if existing.UserID == pref.UserID && existing.Channel == pref.Channel {
			existing.Target = pref.Target
			existing.RiskAlerts = pref.RiskAlerts
			existing.PortfolioReports = pref.PortfolioReports
			existing.MinRiskLevel = pref.MinRiskLevel
			clone := *existing
			return &clone, nil
		}
	}
	clone := *pref
	f.prefs[pref.ID] = &clone
	out := clone
	return &out, nil
}

func (f *fakePrefRepo) GetByID(_ context.Context, id string) (*model.NotificationPreference, error) {
	pref, ok := f.prefs[id]
	if !ok {
		return nil, repository.ErrPreferenceNotFound
	}
	clone := *pref
	return &clone, nil
}

func (f *fakePrefRepo) ListByUser(_ context.Context, userID string) ([]*model.NotificationPreference, error) {
	var result []*model.NotificationPreference
	for _, pref := range f.prefs {
		if pref.UserID == userID {
			clone := *pref
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (f *fakePrefRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.prefs[id]; !ok {
		return repository.ErrPreferenceNotFound
	}
	delete(f.prefs, id)
	return nil
}

// fakeEncrypter reverses the string so tests can tell ciphertext from
// plaintext without real crypto.
type fakeEncrypter struct{}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

func (fakeEncrypter) Encrypt(plaintext string) (string, error)  { return reverse(plaintext), nil }
func (fakeEncrypter) Decrypt(ciphertext string) (string, error) { return reverse(ciphertext), nil }
func (fakeEncrypter) HashSecret(secret string) (string, error)  { return secret, nil }
func (fakeEncrypter) CheckSecretHash(secret, hash string) bool  { return secret == hash }

type fakeNotifySrv struct {
	sendErr error
	sent    []notifysrv.SendRequest
}

func (f *fakeNotifySrv) SendNotification(_ context.Context, req notifysrv.SendRequest) (*notifysrv.SendResponse, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent = append(f.sent, req)
	return &notifysrv.SendResponse{DeliveryID: "d-1", Status: "queued"}, nil
}

func (f *fakeNotifySrv) GetDeliveryStatus(_ context.Context, deliveryID string) (*notifysrv.DeliveryStatus, error) {
	return &notifysrv.DeliveryStatus{DeliveryID: deliveryID, Status: "delivered"}, nil
}

func TestUpsertPreference(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	t.Run("encrypts target at rest and masks response", func(t *testing.T) {
		repo := newFakePrefRepo()
		uc := New(repo, &fakeNotifySrv{}, fakeEncrypter{}, log.NewNop())

		target := "https://hooks.example.com/services/secret-token"
		pref, err := uc.UpsertPreference(ctx, sc, notification.PreferenceInput{
			Channel:    model.ChannelWebhook,
			Target:     target,
			RiskAlerts: true,
		})
		if err != nil {
			t.Fatalf("UpsertPreference returned error: %v", err)
		}
		if strings.Contains(pref.Target, "secret-token") {
			t.Errorf("response leaks the full target: %q", pref.Target)
		}
		for _, stored := range repo.prefs {
			if stored.Target == target {
				t.Error("target stored in plaintext")
			}
			if stored.Target != reverse(target) {
				t.Errorf("expected encrypted target stored, got %q", stored.Target)
			}
		}
	})

	t.Run("defaults min risk level to high", func(t *testing.T) {
		repo := newFakePrefRepo()
		uc := New(repo, &fakeNotifySrv{}, fakeEncrypter{}, log.NewNop())

		pref, err := uc.UpsertPreference(ctx, sc, notification.PreferenceInput{
			Channel: model.ChannelEmail,
			Target:  "user@example.com",
		})
		if err != nil {
			t.Fatalf("UpsertPreference returned error: %v", err)
		}
		if pref.MinRiskLevel != model.RiskLevelHigh {
			t.Errorf("expected default min level high, got %s", pref.MinRiskLevel)
		}
	})

	t.Run("rejects unknown channel", func(t *testing.T) {
		uc := New(newFakePrefRepo(), &fakeNotifySrv{}, fakeEncrypter{}, log.NewNop())

		_, err := uc.UpsertPreference(ctx, sc, notification.PreferenceInput{Channel: "sms", Target: "+1555"})
		if !errors.Is(err, notification.ErrInvalidChannel) {
			t.Errorf("expected ErrInvalidChannel, got %v", err)
		}
	})

	t.Run("rejects blank target", func(t *testing.T) {
		uc := New(newFakePrefRepo(), &fakeNotifySrv{}, fakeEncrypter{}, log.NewNop())

		_, err := uc.UpsertPreference(ctx, sc, notification.PreferenceInput{Channel: model.ChannelEmail, Target: "   "})
		if !errors.Is(err, notification.ErrTargetRequired) {
			t.Errorf("expected ErrTargetRequired, got %v", err)
		}
	})
}

func TestDispatchRiskAlert(t *testing.T) {
	ctx := context.Background()

	seed := func(repo *fakePrefRepo, id string, level model.RiskLevel, riskAlerts bool) {
		repo.prefs[id] = &model.NotificationPreference{
			ID:           id,
			UserID:       "user-1",
			Channel:      model.ChannelEmail,
			Target:       reverse("user@example.com"),
			RiskAlerts:   riskAlerts,
			MinRiskLevel: level,
		}
	}

	event := model.RiskAlertEvent{
		BundleID: "bundle-1",
		UserID:   "user-1",
		Level:    model.RiskLevelHigh,
		Message:  "volatility crossed 60%",
	}

	t.Run("delivers decrypted target to matching preferences", func(t *testing.T) {
		repo := newFakePrefRepo()
		seed(repo, "p-1", model.RiskLevelHigh, true)
		notify := &fakeNotifySrv{}
		uc := New(repo, notify, fakeEncrypter{}, log.NewNop())

		if err := uc.DispatchRiskAlert(ctx, event); err != nil {
			t.Fatalf("DispatchRiskAlert returned error: %v", err)
		}
		if len(notify.sent) != 1 {
			t.Fatalf("expected 1 delivery, got %d", len(notify.sent))
		}
		if notify.sent[0].Target != "user@example.com" {
			t.Errorf("expected decrypted target, got %q", notify.sent[0].Target)
		}
		if notify.sent[0].Body != event.Message {
			t.Errorf("expected alert message as body, got %q", notify.sent[0].Body)
		}
	})

	t.Run("skips preferences above the event level", func(t *testing.T) {
		repo := newFakePrefRepo()
		seed(repo, "p-1", model.RiskLevelCritical, true)
		notify := &fakeNotifySrv{}
		uc := New(repo, notify, fakeEncrypter{}, log.NewNop())

		if err := uc.DispatchRiskAlert(ctx, event); err != nil {
			t.Fatalf("DispatchRiskAlert returned error: %v", err)
		}
		if len(notify.sent) != 0 {
			t.Errorf("expected no delivery for critical-only preference, got %d", len(notify.sent))
		}
	})

	t.Run("skips opted-out preferences", func(t *testing.T) {
		repo := newFakePrefRepo()
		seed(repo, "p-1", model.RiskLevelLow, false)
		notify := &fakeNotifySrv{}
		uc := New(repo, notify, fakeEncrypter{}, log.NewNop())

		if err := uc.DispatchRiskAlert(ctx, event); err != nil {
			t.Fatalf("DispatchRiskAlert returned error: %v", err)
		}
		if len(notify.sent) != 0 {
			t.Errorf("expected no delivery, got %d", len(notify.sent))
		}
	})

	t.Run("reports failure only when every delivery fails", func(t *testing.T) {
		repo := newFakePrefRepo()
		seed(repo, "p-1", model.RiskLevelHigh, true)
		notify := &fakeNotifySrv{sendErr: errors.New("dispatch service down")}
		uc := New(repo, notify, fakeEncrypter{}, log.NewNop())

		if err := uc.DispatchRiskAlert(ctx, event); !errors.Is(err, notification.ErrDispatchFailed) {
			t.Errorf("expected ErrDispatchFailed, got %v", err)
		}
	})

	t.Run("no matching preferences is not an error", func(t *testing.T) {
		uc := New(newFakePrefRepo(), &fakeNotifySrv{}, fakeEncrypter{}, log.NewNop())

		if err := uc.DispatchRiskAlert(ctx, event); err != nil {
			t.Errorf("expected nil error for empty fan-out, got %v", err)
		}
	})
}

func TestDeletePreference(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes own preference", func(t *testing.T) {
		repo := newFakePrefRepo()
		repo.prefs["p-1"] = &model.NotificationPreference{ID: "p-1", UserID: "user-1", Channel: model.ChannelEmail}
		uc := New(repo, &fakeNotifySrv{}, fakeEncrypter{}, log.NewNop())

		if err := uc.DeletePreference(ctx, model.Scope{UserID: "user-1"}, "p-1"); err != nil {
			t.Fatalf("DeletePreference returned error: %v", err)
		}
		if len(repo.prefs) != 0 {
			t.Error("expected preference removed")
		}
	})

	t.Run("rejects another user's preference", func(t *testing.T) {
		repo := newFakePrefRepo()
		repo.prefs["p-1"] = &model.NotificationPreference{ID: "p-1", UserID: "user-2", Channel: model.ChannelEmail}
		uc := New(repo, &fakeNotifySrv{}, fakeEncrypter{}, log.NewNop())

		if err := uc.DeletePreference(ctx, model.Scope{UserID: "user-1"}, "p-1"); !errors.Is(err, notification.ErrNotOwner) {
			t.Errorf("expected ErrNotOwner, got %v", err)
		}
	})

	t.Run("missing preference", func(t *testing.T) {
		uc := New(newFakePrefRepo(), &fakeNotifySrv{}, fakeEncrypter{}, log.NewNop())

		if err := uc.DeletePreference(ctx, model.Scope{UserID: "user-1"}, "nope"); !errors.Is(err, notification.ErrPreferenceNotFound) {
			t.Errorf("expected ErrPreferenceNotFound, got %v", err)
		}
	})
}

func TestMaskTarget(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"short", "****"},
		{"12345678", "****"},
		{"user@example.com", "user****.com"},
		// Multibyte targets count runes, not bytes.
		{"пароль", "****"},
		{"ключ@пример.com", "ключ****.com"},
	}
	for _, tc := range cases {
		if got := maskTarget(tc.in); got != tc.want {
			t.Errorf("maskTarget(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
