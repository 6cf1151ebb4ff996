package httpclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a client failure.
type Kind string

const (
	// KindAPI means the server responded with a non-2xx status.
	KindAPI Kind = "api"
	// KindNetwork means no response was obtainable (DNS, connection refused).
	KindNetwork Kind = "network"
	// KindTimeout means the per-attempt deadline or the caller's deadline
	// expired before a response arrived.
	KindTimeout Kind = "timeout"
)

// Error is the typed error surfaced by the client. Callers use the kind to
// decide between a retry affordance and a permanent failure message.
type Error struct {
	Kind    Kind
	Status  int
	Code    string
	Message string
	Details json.RawMessage
	Err     error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Retriable reports whether retrying the request could succeed. Client
// request errors (4xx) are never retriable; everything else is transient.
func (e *Error) Retriable() bool {
	if e.Kind != KindAPI {
		return true
	}
	return e.Status < http.StatusBadRequest || e.Status >= http.StatusInternalServerError
}

// NewAPIError builds an API-kind error from a non-2xx response.
func NewAPIError(status int, code, message string, details json.RawMessage) *Error {
	return &Error{
		Kind:    KindAPI,
		Status:  status,
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewNetworkError builds a network-kind error wrapping the transport failure.
func NewNetworkError(message string, err error) *Error {
	return &Error{
		Kind:    KindNetwork,
		Message: message,
		Err:     err,
	}
}

// NewTimeoutError builds a timeout-kind error.
func NewTimeoutError(message string, err error) *Error {
	return &Error{
		Kind:    KindTimeout,
		Message: message,
		Err:     err,
	}
}

// AsError extracts a typed *Error from err, if present.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsAPI reports whether err is an API-kind error.
func IsAPI(err error) bool {
	e, ok := AsError(err)
	return ok && e.Kind == KindAPI
}

// IsNetwork reports whether err is a network-kind error.
func IsNetwork(err error) bool {
	e, ok := AsError(err)
	return ok && e.Kind == KindNetwork
}

// IsTimeout reports whether err is a timeout-kind error.
func IsTimeout(err error) bool {
	e, ok := AsError(err)
	return ok && e.Kind == KindTimeout
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	if e, ok := AsError(err); ok {
		return e.Status
	}
	return 0
}

// errorBody is the best-effort shape of an upstream error payload.
type errorBody struct {
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
	Details json.RawMessage `json:"details"`
}

// parseErrorBody extracts message/code/details from a non-2xx body, falling
// back to "HTTP {status}: {statusText}" when the body is not usable JSON.
func parseErrorBody(status int, body []byte) (message, code string, details json.RawMessage) {
	message = fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
	if len(body) == 0 {
		return message, "", nil
	}

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return message, "", nil
	}
	if parsed.Message != "" {
		message = parsed.Message
	} else if parsed.Error != "" {
		message = parsed.Error
	}
	return message, parsed.Code, parsed.Details
}
