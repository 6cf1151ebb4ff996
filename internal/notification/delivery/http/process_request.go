package http

import (
	"portfolio-srv/internal/model"
	"portfolio-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processUpsertPreferenceRequest(c *gin.Context) (upsertPreferenceReq, model.Scope, error) {
	var req upsertPreferenceReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "notification.delivery.http.processUpsertPreferenceRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processListPreferencesRequest(c *gin.Context) (model.Scope, error) {
	return scope.GetScopeFromContext(c.Request.Context()), nil
}

func (h *handler) processDeletePreferenceRequest(c *gin.Context) (deletePreferenceReq, model.Scope, error) {
	req := deletePreferenceReq{
		PreferenceID: c.Param("preference_id"),
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
