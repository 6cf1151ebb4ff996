package http

import (
	"errors"

	"portfolio-srv/internal/risk"
	pkgErrors "portfolio-srv/pkg/errors"
)

var (
	errBundleNotFound      = pkgErrors.NewHTTPError(404, "Bundle not found")
	errNotOwner            = pkgErrors.NewHTTPError(403, "Bundle belongs to another user")
	errInsufficientHistory = pkgErrors.NewHTTPError(422, "Not enough history to compute risk")
	errComputeFailed       = pkgErrors.NewHTTPError(500, "Risk computation failed")
	errInternalServer      = pkgErrors.NewHTTPError(500, "Internal server error")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, risk.ErrBundleNotFound):
		return errBundleNotFound
	case errors.Is(err, risk.ErrNotOwner):
		return errNotOwner
	case errors.Is(err, risk.ErrInsufficientHistory):
		return errInsufficientHistory
	case errors.Is(err, risk.ErrComputeFailed):
		return errComputeFailed
	default:
		return errInternalServer
	}
}
