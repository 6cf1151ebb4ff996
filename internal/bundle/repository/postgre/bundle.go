package postgre

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"portfolio-srv/internal/bundle/repository"
	"portfolio-srv/internal/model"
)

// Create - Insert a new bundle record.
func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (*model.Bundle, error) {
	const query = `
		INSERT INTO bundles (id, user_id, name, addresses, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id, user_id, name, addresses, created_at, updated_at`

	row := r.db.QueryRowContext(ctx, query,
		opts.ID, opts.UserID, opts.Name, pq.Array(opts.Addresses), time.Now())

	b, err := scanBundle(row)
	if err != nil {
		r.l.Errorf(ctx, "bundle.repository.postgre.Create: Failed to insert bundle: %v", err)
		return nil, repository.ErrBundleCreateFailed
	}
	return b, nil
}

// GetByID - Get bundle by primary key.
func (r *implRepository) GetByID(ctx context.Context, id string) (*model.Bundle, error) {
	const query = `
		SELECT id, user_id, name, addresses, created_at, updated_at
		FROM bundles
		WHERE id = $1`

	b, err := scanBundle(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrBundleNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "bundle.repository.postgre.GetByID: Failed to get bundle: %v", err)
		return nil, err
	}
	return b, nil
}

// List - List one user's bundles with pagination, newest first.
func (r *implRepository) List(ctx context.Context, opts repository.ListOptions) ([]*model.Bundle, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bundles WHERE user_id = $1`, opts.UserID).Scan(&total); err != nil {
		r.l.Errorf(ctx, "bundle.repository.postgre.List: Failed to count bundles: %v", err)
		return nil, 0, err
	}

	const query = `
		SELECT id, user_id, name, addresses, created_at, updated_at
		FROM bundles
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, opts.UserID, opts.Limit, opts.Offset)
	if err != nil {
		r.l.Errorf(ctx, "bundle.repository.postgre.List: Failed to list bundles: %v", err)
		return nil, 0, err
	}
	defer rows.Close()

	bundles, err := scanBundles(rows)
	if err != nil {
		r.l.Errorf(ctx, "bundle.repository.postgre.List: Failed to scan bundles: %v", err)
		return nil, 0, err
	}
	return bundles, total, nil
}

// ListAll - List every bundle. Used by the background snapshot refresher.
func (r *implRepository) ListAll(ctx context.Context) ([]*model.Bundle, error) {
	const query = `
		SELECT id, user_id, name, addresses, created_at, updated_at
		FROM bundles
		ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "bundle.repository.postgre.ListAll: Failed to list bundles: %v", err)
		return nil, err
	}
	defer rows.Close()

	bundles, err := scanBundles(rows)
	if err != nil {
		r.l.Errorf(ctx, "bundle.repository.postgre.ListAll: Failed to scan bundles: %v", err)
		return nil, err
	}
	return bundles, nil
}

// Update - Update bundle name and/or addresses.
func (r *implRepository) Update(ctx context.Context, opts repository.UpdateOptions) (*model.Bundle, error) {
	const query = `
		UPDATE bundles
		SET name = $2, addresses = $3, updated_at = $4
		WHERE id = $1
		RETURNING id, user_id, name, addresses, created_at, updated_at`

	row := r.db.QueryRowContext(ctx, query,
		opts.ID, opts.Name, pq.Array(opts.Addresses), time.Now())

	b, err := scanBundle(row)
	if err == sql.ErrNoRows {
		return nil, repository.ErrBundleNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "bundle.repository.postgre.Update: Failed to update bundle: %v", err)
		return nil, repository.ErrBundleUpdateFailed
	}
	return b, nil
}

// Delete - Delete a bundle and let the snapshot FK cascade.
func (r *implRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bundles WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "bundle.repository.postgre.Delete: Failed to delete bundle: %v", err)
		return repository.ErrBundleDeleteFailed
	}
	affected, err := result.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "bundle.repository.postgre.Delete: RowsAffected failed: %v", err)
		return repository.ErrBundleDeleteFailed
	}
	if affected == 0 {
		return repository.ErrBundleNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBundle(row rowScanner) (*model.Bundle, error) {
	var b model.Bundle
	var addresses pq.StringArray
	if err := row.Scan(&b.ID, &b.UserID, &b.Name, &addresses, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	b.Addresses = addresses
	return &b, nil
}

func scanBundles(rows *sql.Rows) ([]*model.Bundle, error) {
	bundles := make([]*model.Bundle, 0)
	for rows.Next() {
		b, err := scanBundle(rows)
		if err != nil {
			return nil, err
		}
		bundles = append(bundles, b)
	}
	return bundles, rows.Err()
}
