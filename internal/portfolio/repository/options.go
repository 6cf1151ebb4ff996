package repository

import "time"

type ListValuePointsOptions struct {
	BundleID string
	From     time.Time
	To       time.Time
}
