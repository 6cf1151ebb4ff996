package accountsrv

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"portfolio-srv/pkg/httpclient"
)

// GetUser retrieves a user profile by ID.
func (c *accountImpl) GetUser(ctx context.Context, userID string) (*User, error) {
	if userID == "" {
		return nil, fmt.Errorf("accountsrv: user ID is required")
	}

	var user User
	endpoint := fmt.Sprintf("%s/%s", PathUsers, url.PathEscape(userID))
	if err := c.httpClient.Get(ctx, endpoint, &user); err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// ValidateUserAccess checks whether a user may act on a resource. A 403/401
// from the account service means "no" rather than an error.
func (c *accountImpl) ValidateUserAccess(ctx context.Context, userID, resourceID string) (bool, error) {
	endpoint := fmt.Sprintf("%s/%s/access?resource_id=%s", PathUsers, url.PathEscape(userID), url.QueryEscape(resourceID))
	err := c.httpClient.Get(ctx, endpoint, nil)
	if err == nil {
		return true, nil
	}
	if status := httpclient.StatusOf(err); status == http.StatusForbidden || status == http.StatusUnauthorized {
		return false, nil
	}
	return false, fmt.Errorf("failed to validate user access: %w", err)
}
