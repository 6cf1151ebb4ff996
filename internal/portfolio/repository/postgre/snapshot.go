package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"portfolio-srv/internal/model"
	"portfolio-srv/internal/portfolio/repository"
)

// CreateSnapshot - Insert one aggregated snapshot. Detailed holdings are
// stored as JSONB; the value columns are kept separate for history queries.
func (r *implRepository) CreateSnapshot(ctx context.Context, snapshot *model.PortfolioSnapshot) error {
	detail, err := json.Marshal(snapshotDetail{
		Chains:    snapshot.Chains,
		Tokens:    snapshot.Tokens,
		Positions: snapshot.Positions,
	})
	if err != nil {
		r.l.Errorf(ctx, "portfolio.repository.postgre.CreateSnapshot: Failed to marshal detail: %v", err)
		return repository.ErrSnapshotCreateFailed
	}

	const query = `
		INSERT INTO portfolio_snapshots
			(id, bundle_id, total_value_usd, token_value_usd, protocol_value_usd, detail, taken_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = r.db.ExecContext(ctx, query,
		snapshot.ID, snapshot.BundleID,
		snapshot.TotalValueUSD, snapshot.TokenValueUSD, snapshot.ProtocolValueUSD,
		detail, snapshot.TakenAt)
	if err != nil {
		r.l.Errorf(ctx, "portfolio.repository.postgre.CreateSnapshot: Failed to insert snapshot: %v", err)
		return repository.ErrSnapshotCreateFailed
	}
	return nil
}

// GetLatestSnapshot - Get the most recent snapshot for a bundle.
func (r *implRepository) GetLatestSnapshot(ctx context.Context, bundleID string) (*model.PortfolioSnapshot, error) {
	const query = `
		SELECT id, bundle_id, total_value_usd, token_value_usd, protocol_value_usd, detail, taken_at
		FROM portfolio_snapshots
		WHERE bundle_id = $1
		ORDER BY taken_at DESC
		LIMIT 1`

	var snapshot model.PortfolioSnapshot
	var detail []byte
	err := r.db.QueryRowContext(ctx, query, bundleID).Scan(
		&snapshot.ID, &snapshot.BundleID,
		&snapshot.TotalValueUSD, &snapshot.TokenValueUSD, &snapshot.ProtocolValueUSD,
		&detail, &snapshot.TakenAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrSnapshotNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "portfolio.repository.postgre.GetLatestSnapshot: Failed to get snapshot: %v", err)
		return nil, err
	}

	var d snapshotDetail
	if err := json.Unmarshal(detail, &d); err != nil {
		r.l.Errorf(ctx, "portfolio.repository.postgre.GetLatestSnapshot: Failed to unmarshal detail: %v", err)
		return nil, err
	}
	snapshot.Chains = d.Chains
	snapshot.Tokens = d.Tokens
	snapshot.Positions = d.Positions
	return &snapshot, nil
}

// ListValuePoints - List total values over a time window, oldest first.
func (r *implRepository) ListValuePoints(ctx context.Context, opts repository.ListValuePointsOptions) ([]model.ValuePoint, error) {
	const query = `
		SELECT taken_at, total_value_usd
		FROM portfolio_snapshots
		WHERE bundle_id = $1 AND taken_at >= $2 AND taken_at < $3
		ORDER BY taken_at`

	rows, err := r.db.QueryContext(ctx, query, opts.BundleID, opts.From, opts.To)
	if err != nil {
		r.l.Errorf(ctx, "portfolio.repository.postgre.ListValuePoints: Failed to query points: %v", err)
		return nil, err
	}
	defer rows.Close()

	points := make([]model.ValuePoint, 0)
	for rows.Next() {
		var p model.ValuePoint
		if err := rows.Scan(&p.Time, &p.ValueUSD); err != nil {
			r.l.Errorf(ctx, "portfolio.repository.postgre.ListValuePoints: Failed to scan point: %v", err)
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

// DeleteSnapshotsBefore - Prune snapshots older than the cutoff.
func (r *implRepository) DeleteSnapshotsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM portfolio_snapshots WHERE taken_at < $1`, cutoff)
	if err != nil {
		r.l.Errorf(ctx, "portfolio.repository.postgre.DeleteSnapshotsBefore: Failed to delete snapshots: %v", err)
		return 0, err
	}
	return result.RowsAffected()
}

// snapshotDetail is the JSONB payload stored alongside the value columns.
type snapshotDetail struct {
	Chains    []model.ChainValue       `json:"chains"`
	Tokens    []model.TokenHolding     `json:"tokens"`
	Positions []model.ProtocolPosition `json:"positions"`
}
