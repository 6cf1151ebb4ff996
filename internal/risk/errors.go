package risk

import "errors"

var (
	ErrBundleNotFound      = errors.New("bundle not found")
	ErrNotOwner            = errors.New("bundle belongs to another user")
	ErrInsufficientHistory = errors.New("not enough history to compute risk")
	ErrComputeFailed       = errors.New("risk computation failed")
)
