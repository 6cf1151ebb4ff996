package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	bundleRepo "portfolio-srv/internal/bundle/repository"

	"portfolio-srv/internal/intent"
	"portfolio-srv/internal/intent/repository"
	"portfolio-srv/internal/model"
	"portfolio-srv/pkg/intentsrv"
)

// Submit records an intent, forwards it to the execution service and
// publishes a submission event for the status poller.
func (uc *implUseCase) Submit(ctx context.Context, sc model.Scope, input intent.SubmitInput) (*model.Intent, error) {
	if !isValidKind(input.Kind) {
		return nil, intent.ErrInvalidKind
	}

	b, err := uc.bundleRepo.GetByID(ctx, input.BundleID)
	if err != nil {
		if err == bundleRepo.ErrBundleNotFound {
			return nil, intent.ErrBundleNotFound
		}
		uc.l.Errorf(ctx, "intent.usecase.Submit: Failed to get bundle: %v", err)
		return nil, err
	}
	if b.UserID != sc.UserID {
		return nil, intent.ErrNotOwner
	}

	if uc.accountSrv != nil {
		allowed, err := uc.accountSrv.ValidateUserAccess(ctx, sc.UserID, b.ID)
		if err != nil {
			// Availability of the account service must not block
			// submissions; the bundle ownership check above already gates
			// access.
			uc.l.Warnf(ctx, "intent.usecase.Submit: Account access check unavailable: %v", err)
		} else if !allowed {
			return nil, intent.ErrNotOwner
		}
	}

	record := &model.Intent{
		ID:       uuid.New().String(),
		UserID:   sc.UserID,
		BundleID: b.ID,
		Kind:     input.Kind,
		Payload:  input.Payload,
		Status:   model.IntentStatusPending,
	}
	if err := uc.repo.Create(ctx, record); err != nil {
		uc.l.Errorf(ctx, "intent.usecase.Submit: Failed to create intent: %v", err)
		return nil, err
	}

	resp, err := uc.intentSrv.SubmitIntent(ctx, intentsrv.SubmitRequest{
		UserID:   sc.UserID,
		BundleID: b.ID,
		Kind:     input.Kind,
		Payload:  input.Payload,
	})
	if err != nil {
		uc.l.Errorf(ctx, "intent.usecase.Submit: Execution service rejected intent: %v", err)
		if updateErr := uc.repo.UpdateStatus(ctx, repository.UpdateStatusOptions{
			ID:         record.ID,
			Status:     model.IntentStatusFailed,
			FailReason: err.Error(),
		}); updateErr != nil {
			uc.l.Errorf(ctx, "intent.usecase.Submit: Failed to mark intent failed: %v", updateErr)
		}
		return nil, intent.ErrSubmitFailed
	}

	record.Status = model.IntentStatusSubmitted
	record.ExternalID = resp.ExternalID
	if err := uc.repo.UpdateStatus(ctx, repository.UpdateStatusOptions{
		ID:         record.ID,
		Status:     record.Status,
		ExternalID: record.ExternalID,
	}); err != nil {
		uc.l.Errorf(ctx, "intent.usecase.Submit: Failed to mark intent submitted: %v", err)
		return nil, err
	}

	uc.publishIntentSubmitted(ctx, record.ID, sc.UserID)
	return record, nil
}

// Get returns one of the caller's intents.
func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, intentID string) (*model.Intent, error) {
	record, err := uc.repo.GetByID(ctx, intentID)
	if err != nil {
		if err == repository.ErrIntentNotFound {
			return nil, intent.ErrIntentNotFound
		}
		uc.l.Errorf(ctx, "intent.usecase.Get: Failed to get intent: %v", err)
		return nil, err
	}
	if record.UserID != sc.UserID {
		return nil, intent.ErrNotOwner
	}
	return record, nil
}

// List returns the caller's intents, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input intent.ListInput) (intent.ListOutput, error) {
	input.PaginateQuery.Adjust()

	intents, total, err := uc.repo.List(ctx, repository.ListOptions{
		UserID:   sc.UserID,
		BundleID: input.BundleID,
		Limit:    input.PaginateQuery.Limit,
		Offset:   input.PaginateQuery.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "intent.usecase.List: Failed to list intents: %v", err)
		return intent.ListOutput{}, err
	}

	return intent.ListOutput{
		Intents:   intents,
		Paginator: input.PaginateQuery.Build(total, int64(len(intents))),
	}, nil
}

// SyncStatus polls the execution service and stores the mapped status.
func (uc *implUseCase) SyncStatus(ctx context.Context, intentID string) (*model.Intent, error) {
	record, err := uc.repo.GetByID(ctx, intentID)
	if err != nil {
		if err == repository.ErrIntentNotFound {
			return nil, intent.ErrIntentNotFound
		}
		return nil, err
	}
	if record.Status.Terminal() || record.ExternalID == "" {
		return record, nil
	}

	resp, err := uc.intentSrv.GetIntentStatus(ctx, record.ExternalID)
	if err != nil {
		uc.l.Errorf(ctx, "intent.usecase.SyncStatus: Failed to poll execution service: %v", err)
		return nil, err
	}

	status := mapExternalStatus(resp.Status)
	if status == record.Status {
		return record, nil
	}

	record.Status = status
	record.FailReason = resp.FailReason
	if err := uc.repo.UpdateStatus(ctx, repository.UpdateStatusOptions{
		ID:         record.ID,
		Status:     record.Status,
		ExternalID: record.ExternalID,
		FailReason: record.FailReason,
	}); err != nil {
		uc.l.Errorf(ctx, "intent.usecase.SyncStatus: Failed to update intent: %v", err)
		return nil, err
	}
	return record, nil
}

// ListActive returns every non-terminal intent for the status poller.
func (uc *implUseCase) ListActive(ctx context.Context) ([]*model.Intent, error) {
	return uc.repo.ListActive(ctx)
}

func isValidKind(kind string) bool {
	switch kind {
	case intent.KindSwap, intent.KindBridge, intent.KindWithdraw:
		return true
	}
	return false
}

// mapExternalStatus maps the execution service's status strings onto the
// local lifecycle. Unknown statuses keep the intent in EXECUTING so the
// poller retries.
func mapExternalStatus(external string) model.IntentStatus {
	switch external {
	case "pending", "queued":
		return model.IntentStatusSubmitted
	case "executing", "in_progress":
		return model.IntentStatusExecuting
	case "completed", "success":
		return model.IntentStatusCompleted
	case "failed", "rejected", "expired":
		return model.IntentStatusFailed
	default:
		return model.IntentStatusExecuting
	}
}

func (uc *implUseCase) publishIntentSubmitted(ctx context.Context, intentID, userID string) {
	if uc.producer == nil {
		return
	}

	event := model.Event{
		Type:       model.EventIntentSubmitted,
		OccurredAt: time.Now(),
		IntentSubmitted: &model.IntentSubmittedEvent{
			IntentID: intentID,
			UserID:   userID,
		},
	}
	value, err := json.Marshal(event)
	if err != nil {
		uc.l.Errorf(ctx, "intent.usecase.publishIntentSubmitted: Failed to marshal event: %v", err)
		return
	}
	if err := uc.producer.Publish([]byte(intentID), value); err != nil {
		uc.l.Errorf(ctx, "intent.usecase.publishIntentSubmitted: Failed to publish event: %v", err)
	}
}
