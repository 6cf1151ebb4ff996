package debank

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout for the aggregator.
	DefaultTimeout = 30 * time.Second
	// DefaultRetries is the default number of retries.
	DefaultRetries = 3
	// DefaultRetryDelay is the base delay for exponential backoff.
	DefaultRetryDelay = 1 * time.Second
)

// API path segments (full URLs built in debank.go).
const (
	PathTokenList    = "/v1/user/all_token_list"
	PathProtocolList = "/v1/user/all_complex_protocol_list"
	PathChainBalance = "/v1/user/total_balance"
)
