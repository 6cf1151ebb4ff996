package postgre

import (
	"context"
	"database/sql"
	"time"

	"portfolio-srv/internal/model"
	"portfolio-srv/internal/notification/repository"
)

const preferenceColumns = `id, user_id, channel, target, risk_alerts, portfolio_reports, min_risk_level, created_at, updated_at`

// Upsert - Insert or replace the user's preference for one channel. The
// target column holds ciphertext; encryption happens in the usecase.
func (r *implRepository) Upsert(ctx context.Context, pref *model.NotificationPreference) (*model.NotificationPreference, error) {
	const query = `
		INSERT INTO notification_preferences (` + preferenceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		ON CONFLICT (user_id, channel) DO UPDATE SET
			target = EXCLUDED.target,
			risk_alerts = EXCLUDED.risk_alerts,
			portfolio_reports = EXCLUDED.portfolio_reports,
			min_risk_level = EXCLUDED.min_risk_level,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + preferenceColumns

	row := r.db.QueryRowContext(ctx, query,
		pref.ID, pref.UserID, pref.Channel, pref.Target,
		pref.RiskAlerts, pref.PortfolioReports, pref.MinRiskLevel, time.Now())

	saved, err := scanPreference(row)
	if err != nil {
		r.l.Errorf(ctx, "notification.repository.postgre.Upsert: Failed to save preference: %v", err)
		return nil, repository.ErrPreferenceUpsertFailed
	}
	return saved, nil
}

// GetByID - Get preference by primary key.
func (r *implRepository) GetByID(ctx context.Context, id string) (*model.NotificationPreference, error) {
	const query = `SELECT ` + preferenceColumns + ` FROM notification_preferences WHERE id = $1`

	pref, err := scanPreference(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrPreferenceNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "notification.repository.postgre.GetByID: Failed to get preference: %v", err)
		return nil, err
	}
	return pref, nil
}

// ListByUser - List one user's preferences.
func (r *implRepository) ListByUser(ctx context.Context, userID string) ([]*model.NotificationPreference, error) {
	const query = `
		SELECT ` + preferenceColumns + `
		FROM notification_preferences
		WHERE user_id = $1
		ORDER BY channel`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.l.Errorf(ctx, "notification.repository.postgre.ListByUser: Failed to list preferences: %v", err)
		return nil, err
	}
	defer rows.Close()

	prefs := make([]*model.NotificationPreference, 0)
	for rows.Next() {
		pref, err := scanPreference(rows)
		if err != nil {
			r.l.Errorf(ctx, "notification.repository.postgre.ListByUser: Failed to scan preference: %v", err)
			return nil, err
		}
		prefs = append(prefs, pref)
	}
	return prefs, rows.Err()
}

// Delete - Delete a preference.
func (r *implRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM notification_preferences WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "notification.repository.postgre.Delete: Failed to delete preference: %v", err)
		return repository.ErrPreferenceDeleteFailed
	}
	affected, err := result.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "notification.repository.postgre.Delete: RowsAffected failed: %v", err)
		return repository.ErrPreferenceDeleteFailed
	}
	if affected == 0 {
		return repository.ErrPreferenceNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPreference(row rowScanner) (*model.NotificationPreference, error) {
	var pref model.NotificationPreference
	if err := row.Scan(&pref.ID, &pref.UserID, &pref.Channel, &pref.Target,
		&pref.RiskAlerts, &pref.PortfolioReports, &pref.MinRiskLevel,
		&pref.CreatedAt, &pref.UpdatedAt); err != nil {
		return nil, err
	}
	return &pref, nil
}
