package intentsrv

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"portfolio-srv/pkg/httpclient"
)

// SubmitIntent submits an execution intent. Submission is never retried:
// a duplicate submit could double-execute an on-chain action.
func (i *intentImpl) SubmitIntent(ctx context.Context, req SubmitRequest) (*SubmitResponse, error) {
	if req.UserID == "" || req.BundleID == "" {
		return nil, fmt.Errorf("intentsrv: user ID and bundle ID are required")
	}

	var resp SubmitResponse
	err := i.httpClient.Do(ctx, http.MethodPost, PathIntents, req, &resp, httpclient.RequestConfig{NoRetry: true})
	if err != nil {
		return nil, fmt.Errorf("failed to submit intent: %w", err)
	}
	return &resp, nil
}

// GetIntentStatus polls the execution service for an intent's progress.
func (i *intentImpl) GetIntentStatus(ctx context.Context, externalID string) (*StatusResponse, error) {
	if externalID == "" {
		return nil, fmt.Errorf("intentsrv: external intent ID is required")
	}

	var resp StatusResponse
	endpoint := fmt.Sprintf("%s/%s", PathIntents, url.PathEscape(externalID))
	if err := i.httpClient.Get(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("failed to get intent status: %w", err)
	}
	return &resp, nil
}
