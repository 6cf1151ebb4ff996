package intent

import "errors"

var (
	ErrIntentNotFound = errors.New("intent not found")
	ErrBundleNotFound = errors.New("bundle not found")
	ErrNotOwner       = errors.New("intent belongs to another user")
	ErrInvalidKind    = errors.New("invalid intent kind")
	ErrSubmitFailed   = errors.New("intent submission failed")
)
