package notifysrv

import (
	"context"
	"fmt"
	"net/url"
)

// SendNotification dispatches one notification through the delivery service.
func (n *notifyImpl) SendNotification(ctx context.Context, req SendRequest) (*SendResponse, error) {
	if req.UserID == "" || req.Channel == "" || req.Target == "" {
		return nil, fmt.Errorf("notifysrv: user ID, channel and target are required")
	}

	var resp SendResponse
	if err := n.httpClient.Post(ctx, PathNotifications, req, &resp); err != nil {
		return nil, fmt.Errorf("failed to send notification: %w", err)
	}
	return &resp, nil
}

// GetDeliveryStatus returns the delivery state for a previously sent
// notification.
func (n *notifyImpl) GetDeliveryStatus(ctx context.Context, deliveryID string) (*DeliveryStatus, error) {
	if deliveryID == "" {
		return nil, fmt.Errorf("notifysrv: delivery ID is required")
	}

	var status DeliveryStatus
	endpoint := fmt.Sprintf("%s/%s", PathDeliveries, url.PathEscape(deliveryID))
	if err := n.httpClient.Get(ctx, endpoint, &status); err != nil {
		return nil, fmt.Errorf("failed to get delivery status: %w", err)
	}
	return &status, nil
}
