package bundle

import "errors"

var (
	ErrBundleNotFound   = errors.New("bundle not found")
	ErrNameRequired     = errors.New("bundle name is required")
	ErrInvalidAddress   = errors.New("invalid wallet address")
	ErrAddressExists    = errors.New("address already in bundle")
	ErrAddressNotFound  = errors.New("address not in bundle")
	ErrTooManyAddresses = errors.New("too many addresses in bundle")
	ErrNotOwner         = errors.New("bundle belongs to another user")
)
