package intent

import (
	"encoding/json"

	"portfolio-srv/internal/model"
	"portfolio-srv/pkg/paginator"
)

// Intent kinds accepted for submission.
const (
	KindSwap     = "swap"
	KindBridge   = "bridge"
	KindWithdraw = "withdraw"
)

type SubmitInput struct {
	BundleID string
	Kind     string
	Payload  json.RawMessage
}

type ListInput struct {
	BundleID      string
	PaginateQuery paginator.PaginateQuery
}

type ListOutput struct {
	Intents   []*model.Intent
	Paginator paginator.Paginator
}
