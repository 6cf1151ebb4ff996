package portfolio

import "time"

const (
	// SnapshotCacheTTL is how long an aggregated snapshot stays fresh in the
	// cache before the aggregator is asked again.
	SnapshotCacheTTL = 5 * time.Minute

	// DefaultHistoryDays is the history window when none is requested.
	DefaultHistoryDays = 30
	// MaxHistoryDays caps the history window.
	MaxHistoryDays = 365
)

type GetSnapshotInput struct {
	BundleID string
	// ForceRefresh skips the cache and re-aggregates.
	ForceRefresh bool
}

type GetHistoryInput struct {
	BundleID string
	Days     int
}

type ExportInput struct {
	BundleID string
}

type ExportOutput struct {
	DownloadURL string
	ExpiresAt   string
	FileName    string
	FileSize    int64
}
