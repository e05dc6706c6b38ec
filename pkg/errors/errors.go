package errors

import "fmt"

// HTTPError carries an HTTP status together with a client-safe message.
// Delivery layers map domain errors to HTTPError; pkg/response renders it.
type HTTPError struct {
	Status  int    `json:"-"`
	Code    int    `json:"error_code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Status, e.Message)
}

// NewHTTPError creates an HTTPError with the given status and message.
// The error code defaults to the status code.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Code: status, Message: message}
}
