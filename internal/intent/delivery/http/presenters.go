package http

import (
	"encoding/json"
	"time"

	"portfolio-srv/internal/intent"
	"portfolio-srv/internal/model"
	"portfolio-srv/pkg/paginator"
)

type submitIntentReq struct {
	BundleID string          `json:"bundle_id" binding:"required"`
	Kind     string          `json:"kind" binding:"required"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}

func (r submitIntentReq) toInput() intent.SubmitInput {
	return intent.SubmitInput{
		BundleID: r.BundleID,
		Kind:     r.Kind,
		Payload:  r.Payload,
	}
}

type getIntentReq struct {
	IntentID string
}

type listIntentsReq struct {
	BundleID      string
	PaginateQuery paginator.PaginateQuery
}

func (r listIntentsReq) toInput() intent.ListInput {
	return intent.ListInput{
		BundleID:      r.BundleID,
		PaginateQuery: r.PaginateQuery,
	}
}

type intentResp struct {
	ID         string          `json:"id"`
	BundleID   string          `json:"bundle_id"`
	Kind       string          `json:"kind"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	Status     string          `json:"status"`
	FailReason string          `json:"fail_reason,omitempty"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
}

type listIntentsResp struct {
	Intents   []intentResp                `json:"intents"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newIntentResp(i *model.Intent) intentResp {
	return intentResp{
		ID:         i.ID,
		BundleID:   i.BundleID,
		Kind:       i.Kind,
		Payload:    i.Payload,
		Status:     string(i.Status),
		FailReason: i.FailReason,
		CreatedAt:  i.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  i.UpdatedAt.Format(time.RFC3339),
	}
}

func (h *handler) newListIntentsResp(o intent.ListOutput) listIntentsResp {
	intents := make([]intentResp, 0, len(o.Intents))
	for _, i := range o.Intents {
		intents = append(intents, h.newIntentResp(i))
	}
	return listIntentsResp{
		Intents:   intents,
		Paginator: o.Paginator.ToResponse(),
	}
}
