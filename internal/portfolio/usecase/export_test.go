package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"portfolio-srv/internal/model"
	"portfolio-srv/internal/portfolio"
	"portfolio-srv/pkg/log"
	"portfolio-srv/pkg/minio"
)

type fakeMinIO struct {
	buckets  []string
	uploaded *minio.UploadRequest
	body     []byte
}

func (f *fakeMinIO) EnsureBucket(_ context.Context, bucketName string) error {
	f.buckets = append(f.buckets, bucketName)
	return nil
}

func (f *fakeMinIO) UploadFile(_ context.Context, req *minio.UploadRequest) (*minio.FileInfo, error) {
	data, err := io.ReadAll(req.Reader)
	if err != nil {
		return nil, err
	}
	f.uploaded = req
	f.body = data
	return &minio.FileInfo{
		BucketName: req.BucketName,
		ObjectName: req.ObjectName,
		Size:       int64(len(data)),
	}, nil
}

func (f *fakeMinIO) DeleteFile(_ context.Context, _, _ string) error {
	return errors.New("not implemented")
}

func (f *fakeMinIO) FileExists(_ context.Context, _, _ string) (bool, error) {
	return false, errors.New("not implemented")
}

func (f *fakeMinIO) GetPresignedDownloadURL(_ context.Context, req *minio.PresignedURLRequest) (string, error) {
	return "http://minio.local/" + req.BucketName + "/" + req.ObjectName + "?sig=test", nil
}

func (f *fakeMinIO) HealthCheck(_ context.Context) error { return nil }

func TestExportCSV(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	addr := "0x1111111111111111111111111111111111111111"
	bundles := &fakeBundleRepo{bundles: map[string]*model.Bundle{
		"b-1": {ID: "b-1", UserID: "user-1", Name: "Main", Addresses: []string{addr}},
	}}
	taken := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	snapshot := &model.PortfolioSnapshot{
		ID:               "snap-1",
		BundleID:         "b-1",
		TotalValueUSD:    7500,
		TokenValueUSD:    6000,
		ProtocolValueUSD: 1500,
		Tokens: []model.TokenHolding{
			{Address: addr, Chain: "eth", Symbol: "ETH", Amount: 2, PriceUSD: 3000, ValueUSD: 6000},
		},
		Positions: []model.ProtocolPosition{
			{Address: addr, Chain: "eth", Protocol: "Aave", Category: "Lending", ValueUSD: 1500},
		},
		TakenAt: taken,
	}

	t.Run("uploads the rendered sheet and returns a presigned URL", func(t *testing.T) {
		snapshots := &fakeSnapshotRepo{stored: []*model.PortfolioSnapshot{snapshot}}
		storage := &fakeMinIO{}
		uc := New(bundles, snapshots, newFakeCache(), &fakeDebank{}, storage, nil, log.NewNop(), Config{ExportBucket: "exports"})

		out, err := uc.ExportCSV(ctx, sc, portfolio.ExportInput{BundleID: "b-1"})
		if err != nil {
			t.Fatalf("ExportCSV returned error: %v", err)
		}

		if storage.uploaded == nil {
			t.Fatal("expected an object uploaded")
		}
		if storage.uploaded.BucketName != "exports" {
			t.Errorf("expected bucket exports, got %s", storage.uploaded.BucketName)
		}
		if storage.uploaded.ObjectName != "b-1/20260830T120000Z.csv" {
			t.Errorf("unexpected object name %s", storage.uploaded.ObjectName)
		}
		if storage.uploaded.ContentType != "text/csv" {
			t.Errorf("expected text/csv content type, got %s", storage.uploaded.ContentType)
		}

		records, err := csv.NewReader(strings.NewReader(string(storage.body))).ReadAll()
		if err != nil {
			t.Fatalf("uploaded body is not valid CSV: %v", err)
		}
		if len(records) != 4 {
			t.Fatalf("expected header, token, protocol and total rows, got %d rows", len(records))
		}
		if records[1][0] != "token" || records[1][3] != "ETH" || records[1][7] != "6000" {
			t.Errorf("unexpected token row %v", records[1])
		}
		if records[2][0] != "protocol" || records[2][3] != "Aave" || records[2][4] != "Lending" {
			t.Errorf("unexpected protocol row %v", records[2])
		}
		if records[3][0] != "total" || records[3][7] != "7500" {
			t.Errorf("unexpected total row %v", records[3])
		}

		if out.DownloadURL != "http://minio.local/exports/b-1/20260830T120000Z.csv?sig=test" {
			t.Errorf("unexpected download URL %s", out.DownloadURL)
		}
		if out.FileName != "portfolio_b-1.csv" {
			t.Errorf("unexpected file name %s", out.FileName)
		}
		if out.FileSize != int64(len(storage.body)) {
			t.Errorf("expected file size %d, got %d", len(storage.body), out.FileSize)
		}
		expires, err := time.Parse(time.RFC3339, out.ExpiresAt)
		if err != nil {
			t.Fatalf("expiry is not RFC3339: %v", err)
		}
		if !expires.After(time.Now()) {
			t.Error("expected the presigned URL to expire in the future")
		}
	})

	t.Run("rejects a bundle without snapshots", func(t *testing.T) {
		uc := New(bundles, &fakeSnapshotRepo{}, newFakeCache(), &fakeDebank{}, &fakeMinIO{}, nil, log.NewNop(), Config{})

		_, err := uc.ExportCSV(ctx, sc, portfolio.ExportInput{BundleID: "b-1"})
		if !errors.Is(err, portfolio.ErrNoSnapshot) {
			t.Errorf("expected ErrNoSnapshot, got %v", err)
		}
	})

	t.Run("rejects another user's bundle", func(t *testing.T) {
		strangers := &fakeBundleRepo{bundles: map[string]*model.Bundle{
			"b-1": {ID: "b-1", UserID: "user-2", Name: "Main"},
		}}
		uc := New(strangers, &fakeSnapshotRepo{}, newFakeCache(), &fakeDebank{}, &fakeMinIO{}, nil, log.NewNop(), Config{})

		_, err := uc.ExportCSV(ctx, sc, portfolio.ExportInput{BundleID: "b-1"})
		if !errors.Is(err, portfolio.ErrNotOwner) {
			t.Errorf("expected ErrNotOwner, got %v", err)
		}
	})
}
