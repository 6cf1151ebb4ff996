package http

import (
	"portfolio-srv/internal/model"
	"portfolio-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processSubmitIntentRequest(c *gin.Context) (submitIntentReq, model.Scope, error) {
	var req submitIntentReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "intent.delivery.http.processSubmitIntentRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processGetIntentRequest(c *gin.Context) (getIntentReq, model.Scope, error) {
	req := getIntentReq{
		IntentID: c.Param("intent_id"),
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processListIntentsRequest(c *gin.Context) (listIntentsReq, model.Scope, error) {
	var req listIntentsReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req.PaginateQuery); err != nil {
		h.l.Errorf(ctx, "intent.delivery.http.processListIntentsRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, err
	}
	req.BundleID = c.Query("bundle_id")

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}
