package http

import (
	"errors"

	"portfolio-srv/internal/portfolio"
	pkgErrors "portfolio-srv/pkg/errors"
)

var (
	errBundleNotFound       = pkgErrors.NewHTTPError(404, "Bundle not found")
	errNotOwner             = pkgErrors.NewHTTPError(403, "Bundle belongs to another user")
	errEmptyBundle          = pkgErrors.NewHTTPError(400, "Bundle has no addresses")
	errAggregateFailed      = pkgErrors.NewHTTPError(502, "Portfolio aggregation failed")
	errNoSnapshot           = pkgErrors.NewHTTPError(404, "No snapshot available for bundle")
	errExportFailed         = pkgErrors.NewHTTPError(500, "Portfolio export failed")
	errInvalidHistoryWindow = pkgErrors.NewHTTPError(400, "Invalid history window")
	errInternalServer       = pkgErrors.NewHTTPError(500, "Internal server error")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, portfolio.ErrBundleNotFound):
		return errBundleNotFound
	case errors.Is(err, portfolio.ErrNotOwner):
		return errNotOwner
	case errors.Is(err, portfolio.ErrEmptyBundle):
		return errEmptyBundle
	case errors.Is(err, portfolio.ErrAggregateFailed):
		return errAggregateFailed
	case errors.Is(err, portfolio.ErrNoSnapshot):
		return errNoSnapshot
	case errors.Is(err, portfolio.ErrExportFailed):
		return errExportFailed
	case errors.Is(err, portfolio.ErrInvalidHistoryWindow):
		return errInvalidHistoryWindow
	default:
		return errInternalServer
	}
}
