package accountsrv

import (
	"time"

	"portfolio-srv/pkg/httpclient"
)

// AccountConfig holds configuration for the account service client.
type AccountConfig struct {
	BaseURL    string
	Timeout    time.Duration // zero means DefaultTimeout
	HTTPClient httpclient.IClient
	Metrics    *httpclient.Metrics
}

// User is a user profile in the account service.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Tier        string `json:"tier"`
}

// accountImpl implements IAccount.
type accountImpl struct {
	httpClient httpclient.IClient
}
