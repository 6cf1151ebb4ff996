package http

import (
	"portfolio-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// UpsertPreference creates or replaces the caller's preference for a channel.
func (h *handler) UpsertPreference(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpsertPreferenceRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "notification.delivery.http.UpsertPreference: processUpsertPreferenceRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	pref, err := h.uc.UpsertPreference(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "notification.delivery.http.UpsertPreference: usecase UpsertPreference failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newPreferenceResp(pref))
}

// ListPreferences returns the caller's preferences.
func (h *handler) ListPreferences(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processListPreferencesRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "notification.delivery.http.ListPreferences: processListPreferencesRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	prefs, err := h.uc.ListPreferences(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "notification.delivery.http.ListPreferences: usecase ListPreferences failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListPreferencesResp(prefs))
}

// DeletePreference removes one of the caller's preferences.
func (h *handler) DeletePreference(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processDeletePreferenceRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "notification.delivery.http.DeletePreference: processDeletePreferenceRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.DeletePreference(ctx, sc, req.PreferenceID); err != nil {
		h.l.Errorf(ctx, "notification.delivery.http.DeletePreference: usecase DeletePreference failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}
