package portfolio

import "errors"

var (
	ErrBundleNotFound       = errors.New("bundle not found")
	ErrNotOwner             = errors.New("bundle belongs to another user")
	ErrEmptyBundle          = errors.New("bundle has no addresses")
	ErrAggregateFailed      = errors.New("portfolio aggregation failed")
	ErrNoSnapshot           = errors.New("no snapshot available for bundle")
	ErrExportFailed         = errors.New("portfolio export failed")
	ErrInvalidHistoryWindow = errors.New("invalid history window")
)
