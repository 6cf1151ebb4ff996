package debank

import (
	"bytes"
	"net/http"

	"portfolio-srv/pkg/httpclient"
)

// mapError replaces generic 400 copy when the aggregator rejects a wallet
// address. Other statuses fall through to the generic typed error.
func mapError(status int, body []byte) error {
	if status == http.StatusBadRequest && bytes.Contains(body, []byte("address")) {
		return httpclient.NewAPIError(status, "invalid_address", "Invalid wallet address", nil)
	}
	return nil
}
