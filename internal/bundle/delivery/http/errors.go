package http

import (
	"errors"

	"portfolio-srv/internal/bundle"
	pkgErrors "portfolio-srv/pkg/errors"
)

var (
	errBundleNotFound   = pkgErrors.NewHTTPError(404, "Bundle not found")
	errNameRequired     = pkgErrors.NewHTTPError(400, "Bundle name is required")
	errInvalidAddress   = pkgErrors.NewHTTPError(400, "Invalid wallet address")
	errAddressExists    = pkgErrors.NewHTTPError(409, "Address already in bundle")
	errAddressNotFound  = pkgErrors.NewHTTPError(404, "Address not in bundle")
	errTooManyAddresses = pkgErrors.NewHTTPError(400, "Too many addresses in bundle")
	errNotOwner         = pkgErrors.NewHTTPError(403, "Bundle belongs to another user")
	errInternalServer   = pkgErrors.NewHTTPError(500, "Internal server error")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, bundle.ErrBundleNotFound):
		return errBundleNotFound
	case errors.Is(err, bundle.ErrNameRequired):
		return errNameRequired
	case errors.Is(err, bundle.ErrInvalidAddress):
		return errInvalidAddress
	case errors.Is(err, bundle.ErrAddressExists):
		return errAddressExists
	case errors.Is(err, bundle.ErrAddressNotFound):
		return errAddressNotFound
	case errors.Is(err, bundle.ErrTooManyAddresses):
		return errTooManyAddresses
	case errors.Is(err, bundle.ErrNotOwner):
		return errNotOwner
	default:
		return errInternalServer
	}
}
