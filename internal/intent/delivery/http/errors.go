package http

import (
	"errors"

	"portfolio-srv/internal/intent"
	pkgErrors "portfolio-srv/pkg/errors"
)

var (
	errIntentNotFound = pkgErrors.NewHTTPError(404, "Intent not found")
	errBundleNotFound = pkgErrors.NewHTTPError(404, "Bundle not found")
	errNotOwner       = pkgErrors.NewHTTPError(403, "Intent belongs to another user")
	errInvalidKind    = pkgErrors.NewHTTPError(400, "Invalid intent kind")
	errSubmitFailed   = pkgErrors.NewHTTPError(502, "Intent submission failed")
	errInternalServer = pkgErrors.NewHTTPError(500, "Internal server error")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, intent.ErrIntentNotFound):
		return errIntentNotFound
	case errors.Is(err, intent.ErrBundleNotFound):
		return errBundleNotFound
	case errors.Is(err, intent.ErrNotOwner):
		return errNotOwner
	case errors.Is(err, intent.ErrInvalidKind):
		return errInvalidKind
	case errors.Is(err, intent.ErrSubmitFailed):
		return errSubmitFailed
	default:
		return errInternalServer
	}
}
