package http

import (
	"errors"

	"portfolio-srv/internal/notification"
	pkgErrors "portfolio-srv/pkg/errors"
)

var (
	errPreferenceNotFound = pkgErrors.NewHTTPError(404, "Notification preference not found")
	errNotOwner           = pkgErrors.NewHTTPError(403, "Preference belongs to another user")
	errInvalidChannel     = pkgErrors.NewHTTPError(400, "Invalid notification channel")
	errTargetRequired     = pkgErrors.NewHTTPError(400, "Notification target is required")
	errDispatchFailed     = pkgErrors.NewHTTPError(502, "Notification dispatch failed")
	errInternalServer     = pkgErrors.NewHTTPError(500, "Internal server error")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, notification.ErrPreferenceNotFound):
		return errPreferenceNotFound
	case errors.Is(err, notification.ErrNotOwner):
		return errNotOwner
	case errors.Is(err, notification.ErrInvalidChannel):
		return errInvalidChannel
	case errors.Is(err, notification.ErrTargetRequired):
		return errTargetRequired
	case errors.Is(err, notification.ErrDispatchFailed):
		return errDispatchFailed
	default:
		return errInternalServer
	}
}
