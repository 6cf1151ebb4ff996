package http

import (
	"portfolio-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// SubmitIntent submits an execution intent for one of the caller's bundles.
func (h *handler) SubmitIntent(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processSubmitIntentRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "intent.delivery.http.SubmitIntent: processSubmitIntentRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	i, err := h.uc.Submit(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "intent.delivery.http.SubmitIntent: usecase Submit failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newIntentResp(i))
}

// GetIntent returns one of the caller's intents.
func (h *handler) GetIntent(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetIntentRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "intent.delivery.http.GetIntent: processGetIntentRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	i, err := h.uc.Get(ctx, sc, req.IntentID)
	if err != nil {
		h.l.Errorf(ctx, "intent.delivery.http.GetIntent: usecase Get failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newIntentResp(i))
}

// ListIntents returns the caller's intents with pagination.
func (h *handler) ListIntents(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListIntentsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "intent.delivery.http.ListIntents: processListIntentsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "intent.delivery.http.ListIntents: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListIntentsResp(o))
}
