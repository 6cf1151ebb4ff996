package postgre

import (
	"context"
	"database/sql"
	"time"

	"portfolio-srv/internal/intent/repository"
	"portfolio-srv/internal/model"
)

const intentColumns = `id, user_id, bundle_id, kind, payload, status, external_id, fail_reason, created_at, updated_at`

// Create - Insert a new intent record.
func (r *implRepository) Create(ctx context.Context, intent *model.Intent) error {
	const query = `
		INSERT INTO intents (` + intentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`

	_, err := r.db.ExecContext(ctx, query,
		intent.ID, intent.UserID, intent.BundleID, intent.Kind,
		[]byte(intent.Payload), intent.Status, intent.ExternalID, intent.FailReason,
		time.Now())
	if err != nil {
		r.l.Errorf(ctx, "intent.repository.postgre.Create: Failed to insert intent: %v", err)
		return repository.ErrIntentCreateFailed
	}
	return nil
}

// GetByID - Get intent by primary key.
func (r *implRepository) GetByID(ctx context.Context, id string) (*model.Intent, error) {
	const query = `SELECT ` + intentColumns + ` FROM intents WHERE id = $1`

	i, err := scanIntent(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrIntentNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "intent.repository.postgre.GetByID: Failed to get intent: %v", err)
		return nil, err
	}
	return i, nil
}

// List - List one user's intents with pagination, newest first.
func (r *implRepository) List(ctx context.Context, opts repository.ListOptions) ([]*model.Intent, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM intents WHERE user_id = $1 AND ($2 = '' OR bundle_id = $2)`,
		opts.UserID, opts.BundleID).Scan(&total); err != nil {
		r.l.Errorf(ctx, "intent.repository.postgre.List: Failed to count intents: %v", err)
		return nil, 0, err
	}

	const query = `
		SELECT ` + intentColumns + `
		FROM intents
		WHERE user_id = $1 AND ($2 = '' OR bundle_id = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`

	rows, err := r.db.QueryContext(ctx, query, opts.UserID, opts.BundleID, opts.Limit, opts.Offset)
	if err != nil {
		r.l.Errorf(ctx, "intent.repository.postgre.List: Failed to list intents: %v", err)
		return nil, 0, err
	}
	defer rows.Close()

	intents, err := scanIntents(rows)
	if err != nil {
		r.l.Errorf(ctx, "intent.repository.postgre.List: Failed to scan intents: %v", err)
		return nil, 0, err
	}
	return intents, total, nil
}

// ListActive - List every intent not in a terminal state, oldest first.
func (r *implRepository) ListActive(ctx context.Context) ([]*model.Intent, error) {
	const query = `
		SELECT ` + intentColumns + `
		FROM intents
		WHERE status NOT IN ($1, $2)
		ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, model.IntentStatusCompleted, model.IntentStatusFailed)
	if err != nil {
		r.l.Errorf(ctx, "intent.repository.postgre.ListActive: Failed to list intents: %v", err)
		return nil, err
	}
	defer rows.Close()

	intents, err := scanIntents(rows)
	if err != nil {
		r.l.Errorf(ctx, "intent.repository.postgre.ListActive: Failed to scan intents: %v", err)
		return nil, err
	}
	return intents, nil
}

// UpdateStatus - Update the lifecycle fields of one intent.
func (r *implRepository) UpdateStatus(ctx context.Context, opts repository.UpdateStatusOptions) error {
	const query = `
		UPDATE intents
		SET status = $2, external_id = $3, fail_reason = $4, updated_at = $5
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		opts.ID, opts.Status, opts.ExternalID, opts.FailReason, time.Now())
	if err != nil {
		r.l.Errorf(ctx, "intent.repository.postgre.UpdateStatus: Failed to update intent: %v", err)
		return repository.ErrIntentUpdateFailed
	}
	affected, err := result.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "intent.repository.postgre.UpdateStatus: RowsAffected failed: %v", err)
		return repository.ErrIntentUpdateFailed
	}
	if affected == 0 {
		return repository.ErrIntentNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIntent(row rowScanner) (*model.Intent, error) {
	var i model.Intent
	var payload []byte
	if err := row.Scan(&i.ID, &i.UserID, &i.BundleID, &i.Kind, &payload,
		&i.Status, &i.ExternalID, &i.FailReason, &i.CreatedAt, &i.UpdatedAt); err != nil {
		return nil, err
	}
	i.Payload = payload
	return &i, nil
}

func scanIntents(rows *sql.Rows) ([]*model.Intent, error) {
	intents := make([]*model.Intent, 0)
	for rows.Next() {
		i, err := scanIntent(rows)
		if err != nil {
			return nil, err
		}
		intents = append(intents, i)
	}
	return intents, rows.Err()
}
