package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	bundleRepository "portfolio-srv/internal/bundle/repository"
	"portfolio-srv/internal/intent"
	"portfolio-srv/internal/intent/repository"
	"portfolio-srv/internal/model"
	"portfolio-srv/pkg/accountsrv"
	"portfolio-srv/pkg/intentsrv"
	"portfolio-srv/pkg/log"
)

type fakeBundleRepo struct {
	bundles map[string]*model.Bundle
}

func newFakeBundleRepo() *fakeBundleRepo {
	return &fakeBundleRepo{bundles: make(map[string]*model.Bundle)}
}

func (f *fakeBundleRepo) Create(_ context.Context, opts bundleRepository.CreateOptions) (*model.Bundle, error) {
	b := &model.Bundle{ID: opts.ID, UserID: opts.UserID, Name: opts.Name, Addresses: opts.Addresses}
	f.bundles[b.ID] = b
	return b, nil
}

func (f *fakeBundleRepo) GetByID(_ context.Context, id string) (*model.Bundle, error) {
	b, ok := f.bundles[id]
	if !ok {
		return nil, bundleRepository.ErrBundleNotFound
	}
	return b, nil
}

func (f *fakeBundleRepo) List(_ context.Context, _ bundleRepository.ListOptions) ([]*model.Bundle, int64, error) {
	return nil, 0, nil
}

func (f *fakeBundleRepo) ListAll(_ context.Context) ([]*model.Bundle, error) {
	return nil, nil
}

func (f *fakeBundleRepo) Update(_ context.Context, _ bundleRepository.UpdateOptions) (*model.Bundle, error) {
	return nil, bundleRepository.ErrBundleNotFound
}

func (f *fakeBundleRepo) Delete(_ context.Context, _ string) error {
	return nil
}

type fakeIntentRepo struct {
	intents       map[string]*model.Intent
	statusUpdates int
}

func newFakeIntentRepo() *fakeIntentRepo {
	return &fakeIntentRepo{intents: make(map[string]*model.Intent)}
}

func (f *fakeIntentRepo) Create(_ context.Context, in *model.Intent) error {
	clone := *in
	f.intents[in.ID] = &clone
	return nil
}

func (f *fakeIntentRepo) GetByID(_ context.Context, id string) (*model.Intent, error) {
	in, ok := f.intents[id]
	if !ok {
		return nil, repository.ErrIntentNotFound
	}
	clone := *in
	return &clone, nil
}

func (f *fakeIntentRepo) List(_ context.Context, opts repository.ListOptions) ([]*model.Intent, int64, error) {
	var result []*model.Intent
	for _, in := range f.intents {
		if in.UserID == opts.UserID {
			result = append(result, in)
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakeIntentRepo) ListActive(_ context.Context) ([]*model.Intent, error) {
	var result []*model.Intent
	for _, in := range f.intents {
		if !in.Status.Terminal() {
			result = append(result, in)
		}
	}
	return result, nil
}

func (f *fakeIntentRepo) UpdateStatus(_ context.Context, opts repository.UpdateStatusOptions) error {
	in, ok := f.intents[opts.ID]
	if !ok {
		return repository.ErrIntentNotFound
	}
	in.Status = opts.Status
	if opts.ExternalID != "" {
		in.ExternalID = opts.ExternalID
	}
	in.FailReason = opts.FailReason
	f.statusUpdates++
	return nil
}

type fakeExecService struct {
	submitErr   error
	statusErr   error
	status      string
	failReason  string
	statusCalls int
}

func (f *fakeExecService) SubmitIntent(_ context.Context, _ intentsrv.SubmitRequest) (*intentsrv.SubmitResponse, error) {
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return &intentsrv.SubmitResponse{ExternalID: "ext-1", Status: "pending"}, nil
}

func (f *fakeExecService) GetIntentStatus(_ context.Context, externalID string) (*intentsrv.StatusResponse, error) {
	f.statusCalls++
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	return &intentsrv.StatusResponse{ExternalID: externalID, Status: f.status, FailReason: f.failReason}, nil
}

type fakeAccountSrv struct {
	allowed bool
	err     error
}

func (f *fakeAccountSrv) GetUser(_ context.Context, userID string) (*accountsrv.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &accountsrv.User{ID: userID}, nil
}

func (f *fakeAccountSrv) ValidateUserAccess(_ context.Context, _, _ string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.allowed, nil
}

type fakeProducer struct {
	published [][]byte
}

func (f *fakeProducer) Publish(_, value []byte) error {
	f.published = append(f.published, value)
	return nil
}

func (f *fakeProducer) Close() error { return nil }

func seedBundle(bundles *fakeBundleRepo, userID string) *model.Bundle {
	b := &model.Bundle{
		ID:        "bundle-1",
		UserID:    userID,
		Name:      "Main",
		Addresses: []string{"0x0000000000000000000000000000000000000001"},
	}
	bundles.bundles[b.ID] = b
	return b
}

func TestIntentSubmit(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}
	payload := json.RawMessage(`{"from":"eth","to":"usdc"}`)

	t.Run("submits and publishes event", func(t *testing.T) {
		bundles := newFakeBundleRepo()
		seedBundle(bundles, "user-1")
		repo := newFakeIntentRepo()
		exec := &fakeExecService{}
		producer := &fakeProducer{}
		uc := New(repo, bundles, exec, nil, producer, log.NewNop())

		record, err := uc.Submit(ctx, sc, intent.SubmitInput{BundleID: "bundle-1", Kind: intent.KindSwap, Payload: payload})
		if err != nil {
			t.Fatalf("Submit returned error: %v", err)
		}
		if record.Status != model.IntentStatusSubmitted {
			t.Errorf("expected status SUBMITTED, got %s", record.Status)
		}
		if record.ExternalID != "ext-1" {
			t.Errorf("expected external id recorded, got %q", record.ExternalID)
		}
		if len(producer.published) != 1 {
			t.Fatalf("expected 1 published event, got %d", len(producer.published))
		}
		var event model.Event
		if err := json.Unmarshal(producer.published[0], &event); err != nil {
			t.Fatalf("published event is not valid JSON: %v", err)
		}
		if event.Type != model.EventIntentSubmitted {
			t.Errorf("expected %s event, got %s", model.EventIntentSubmitted, event.Type)
		}
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		uc := New(newFakeIntentRepo(), newFakeBundleRepo(), &fakeExecService{}, nil, nil, log.NewNop())

		_, err := uc.Submit(ctx, sc, intent.SubmitInput{BundleID: "bundle-1", Kind: "stake", Payload: payload})
		if !errors.Is(err, intent.ErrInvalidKind) {
			t.Errorf("expected ErrInvalidKind, got %v", err)
		}
	})

	t.Run("rejects missing bundle", func(t *testing.T) {
		uc := New(newFakeIntentRepo(), newFakeBundleRepo(), &fakeExecService{}, nil, nil, log.NewNop())

		_, err := uc.Submit(ctx, sc, intent.SubmitInput{BundleID: "nope", Kind: intent.KindSwap, Payload: payload})
		if !errors.Is(err, intent.ErrBundleNotFound) {
			t.Errorf("expected ErrBundleNotFound, got %v", err)
		}
	})

	t.Run("rejects another user's bundle", func(t *testing.T) {
		bundles := newFakeBundleRepo()
		seedBundle(bundles, "user-2")
		uc := New(newFakeIntentRepo(), bundles, &fakeExecService{}, nil, nil, log.NewNop())

		_, err := uc.Submit(ctx, sc, intent.SubmitInput{BundleID: "bundle-1", Kind: intent.KindSwap, Payload: payload})
		if !errors.Is(err, intent.ErrNotOwner) {
			t.Errorf("expected ErrNotOwner, got %v", err)
		}
	})

	t.Run("rejects when the account service denies access", func(t *testing.T) {
		bundles := newFakeBundleRepo()
		seedBundle(bundles, "user-1")
		accounts := &fakeAccountSrv{allowed: false}
		uc := New(newFakeIntentRepo(), bundles, &fakeExecService{}, accounts, nil, log.NewNop())

		_, err := uc.Submit(ctx, sc, intent.SubmitInput{BundleID: "bundle-1", Kind: intent.KindSwap, Payload: payload})
		if !errors.Is(err, intent.ErrNotOwner) {
			t.Errorf("expected ErrNotOwner, got %v", err)
		}
	})

	t.Run("submits when the account service is unavailable", func(t *testing.T) {
		bundles := newFakeBundleRepo()
		seedBundle(bundles, "user-1")
		accounts := &fakeAccountSrv{err: errors.New("account service down")}
		uc := New(newFakeIntentRepo(), bundles, &fakeExecService{}, accounts, nil, log.NewNop())

		got, err := uc.Submit(ctx, sc, intent.SubmitInput{BundleID: "bundle-1", Kind: intent.KindSwap, Payload: payload})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != model.IntentStatusSubmitted {
			t.Errorf("expected status SUBMITTED, got %s", got.Status)
		}
	})

	t.Run("marks intent failed when execution service rejects", func(t *testing.T) {
		bundles := newFakeBundleRepo()
		seedBundle(bundles, "user-1")
		repo := newFakeIntentRepo()
		exec := &fakeExecService{submitErr: errors.New("execution service down")}
		uc := New(repo, bundles, exec, nil, nil, log.NewNop())

		_, err := uc.Submit(ctx, sc, intent.SubmitInput{BundleID: "bundle-1", Kind: intent.KindBridge, Payload: payload})
		if !errors.Is(err, intent.ErrSubmitFailed) {
			t.Fatalf("expected ErrSubmitFailed, got %v", err)
		}
		if len(repo.intents) != 1 {
			t.Fatalf("expected the failed intent persisted, got %d records", len(repo.intents))
		}
		for _, in := range repo.intents {
			if in.Status != model.IntentStatusFailed {
				t.Errorf("expected status FAILED, got %s", in.Status)
			}
			if in.FailReason == "" {
				t.Error("expected fail reason recorded")
			}
		}
	})
}

func TestIntentSyncStatus(t *testing.T) {
	ctx := context.Background()

	seed := func(repo *fakeIntentRepo, status model.IntentStatus, externalID string) *model.Intent {
		in := &model.Intent{
			ID:         "intent-1",
			UserID:     "user-1",
			BundleID:   "bundle-1",
			Kind:       intent.KindSwap,
			Status:     status,
			ExternalID: externalID,
		}
		repo.intents[in.ID] = in
		return in
	}

	t.Run("stores mapped terminal status", func(t *testing.T) {
		repo := newFakeIntentRepo()
		seed(repo, model.IntentStatusExecuting, "ext-1")
		exec := &fakeExecService{status: "completed"}
		uc := New(repo, newFakeBundleRepo(), exec, nil, nil, log.NewNop())

		record, err := uc.SyncStatus(ctx, "intent-1")
		if err != nil {
			t.Fatalf("SyncStatus returned error: %v", err)
		}
		if record.Status != model.IntentStatusCompleted {
			t.Errorf("expected COMPLETED, got %s", record.Status)
		}
		if repo.intents["intent-1"].Status != model.IntentStatusCompleted {
			t.Errorf("expected stored status COMPLETED, got %s", repo.intents["intent-1"].Status)
		}
	})

	t.Run("skips terminal intents without polling", func(t *testing.T) {
		repo := newFakeIntentRepo()
		seed(repo, model.IntentStatusCompleted, "ext-1")
		exec := &fakeExecService{status: "failed"}
		uc := New(repo, newFakeBundleRepo(), exec, nil, nil, log.NewNop())

		record, err := uc.SyncStatus(ctx, "intent-1")
		if err != nil {
			t.Fatalf("SyncStatus returned error: %v", err)
		}
		if record.Status != model.IntentStatusCompleted {
			t.Errorf("expected COMPLETED untouched, got %s", record.Status)
		}
		if exec.statusCalls != 0 {
			t.Errorf("expected no poll for terminal intent, got %d calls", exec.statusCalls)
		}
	})

	t.Run("does not rewrite unchanged status", func(t *testing.T) {
		repo := newFakeIntentRepo()
		seed(repo, model.IntentStatusExecuting, "ext-1")
		exec := &fakeExecService{status: "in_progress"}
		uc := New(repo, newFakeBundleRepo(), exec, nil, nil, log.NewNop())

		if _, err := uc.SyncStatus(ctx, "intent-1"); err != nil {
			t.Fatalf("SyncStatus returned error: %v", err)
		}
		if repo.statusUpdates != 0 {
			t.Errorf("expected no status update for unchanged status, got %d", repo.statusUpdates)
		}
	})

	t.Run("keeps unknown statuses in EXECUTING", func(t *testing.T) {
		repo := newFakeIntentRepo()
		seed(repo, model.IntentStatusSubmitted, "ext-1")
		exec := &fakeExecService{status: "some_new_state"}
		uc := New(repo, newFakeBundleRepo(), exec, nil, nil, log.NewNop())

		record, err := uc.SyncStatus(ctx, "intent-1")
		if err != nil {
			t.Fatalf("SyncStatus returned error: %v", err)
		}
		if record.Status != model.IntentStatusExecuting {
			t.Errorf("expected EXECUTING for unknown upstream status, got %s", record.Status)
		}
	})

	t.Run("records fail reason on failure", func(t *testing.T) {
		repo := newFakeIntentRepo()
		seed(repo, model.IntentStatusExecuting, "ext-1")
		exec := &fakeExecService{status: "rejected", failReason: "insufficient balance"}
		uc := New(repo, newFakeBundleRepo(), exec, nil, nil, log.NewNop())

		record, err := uc.SyncStatus(ctx, "intent-1")
		if err != nil {
			t.Fatalf("SyncStatus returned error: %v", err)
		}
		if record.Status != model.IntentStatusFailed {
			t.Errorf("expected FAILED, got %s", record.Status)
		}
		if record.FailReason != "insufficient balance" {
			t.Errorf("expected fail reason recorded, got %q", record.FailReason)
		}
	})
}
