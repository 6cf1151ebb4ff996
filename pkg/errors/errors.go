package errors

import "fmt"

// HTTPError carries an HTTP status and user-facing message across the
// delivery layer. Domain packages map their sentinel errors into these.
type HTTPError struct {
	Status  int
	Code    int
	Message string
}

// NewHTTPError creates an HTTPError with the given status and message.
// Code defaults to the status.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{
		Status:  status,
		Code:    status,
		Message: message,
	}
}

// NewHTTPErrorWithCode creates an HTTPError carrying a service-specific code.
func NewHTTPErrorWithCode(status, code int, message string) *HTTPError {
	return &HTTPError{
		Status:  status,
		Code:    code,
		Message: message,
	}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
}
