package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"portfolio-srv/internal/model"
	"portfolio-srv/internal/portfolio"
	"portfolio-srv/internal/portfolio/repository"
	"portfolio-srv/pkg/minio"
)

const exportURLExpiry = 30 * time.Minute

// ExportCSV writes the bundle's latest snapshot as CSV to object storage and
// returns a presigned download URL.
func (uc *implUseCase) ExportCSV(ctx context.Context, sc model.Scope, input portfolio.ExportInput) (portfolio.ExportOutput, error) {
	b, err := uc.getOwnedBundle(ctx, sc, input.BundleID)
	if err != nil {
		return portfolio.ExportOutput{}, err
	}

	snapshot, err := uc.repo.GetLatestSnapshot(ctx, b.ID)
	if err != nil {
		if err == repository.ErrSnapshotNotFound {
			return portfolio.ExportOutput{}, portfolio.ErrNoSnapshot
		}
		uc.l.Errorf(ctx, "portfolio.usecase.ExportCSV: Failed to get snapshot: %v", err)
		return portfolio.ExportOutput{}, portfolio.ErrExportFailed
	}

	data, err := renderSnapshotCSV(snapshot)
	if err != nil {
		uc.l.Errorf(ctx, "portfolio.usecase.ExportCSV: Failed to render CSV: %v", err)
		return portfolio.ExportOutput{}, portfolio.ErrExportFailed
	}

	objectName := fmt.Sprintf("%s/%s.csv", b.ID, snapshot.TakenAt.UTC().Format("20060102T150405Z"))

	if err := uc.minio.EnsureBucket(ctx, uc.config.ExportBucket); err != nil {
		uc.l.Errorf(ctx, "portfolio.usecase.ExportCSV: Failed to ensure bucket: %v", err)
		return portfolio.ExportOutput{}, portfolio.ErrExportFailed
	}

	info, err := uc.minio.UploadFile(ctx, &minio.UploadRequest{
		BucketName:  uc.config.ExportBucket,
		ObjectName:  objectName,
		Reader:      bytes.NewReader(data),
		Size:        int64(len(data)),
		ContentType: "text/csv",
		Metadata: map[string]string{
			"bundle_id": b.ID,
			"user_id":   sc.UserID,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "portfolio.usecase.ExportCSV: Failed to upload export: %v", err)
		return portfolio.ExportOutput{}, portfolio.ErrExportFailed
	}

	url, err := uc.minio.GetPresignedDownloadURL(ctx, &minio.PresignedURLRequest{
		BucketName: uc.config.ExportBucket,
		ObjectName: objectName,
		Expiry:     exportURLExpiry,
	})
	if err != nil {
		uc.l.Errorf(ctx, "portfolio.usecase.ExportCSV: Failed to presign URL: %v", err)
		return portfolio.ExportOutput{}, portfolio.ErrExportFailed
	}

	return portfolio.ExportOutput{
		DownloadURL: url,
		ExpiresAt:   time.Now().Add(exportURLExpiry).Format(time.RFC3339),
		FileName:    fmt.Sprintf("portfolio_%s.csv", b.ID),
		FileSize:    info.Size,
	}, nil
}

// renderSnapshotCSV flattens tokens and protocol positions into one sheet.
func renderSnapshotCSV(snapshot *model.PortfolioSnapshot) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"kind", "address", "chain", "asset", "category", "amount", "price_usd", "value_usd"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, t := range snapshot.Tokens {
		record := []string{
			"token", t.Address, t.Chain, t.Symbol, "",
			formatFloat(t.Amount), formatFloat(t.PriceUSD), formatFloat(t.ValueUSD),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	for _, p := range snapshot.Positions {
		record := []string{
			"protocol", p.Address, p.Chain, p.Protocol, p.Category,
			"", "", formatFloat(p.ValueUSD),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	total := []string{"total", "", "", "", "", "", "", formatFloat(snapshot.TotalValueUSD)}
	if err := w.Write(total); err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
