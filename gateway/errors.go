package gateway

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// APIError is a failed backend response decoded once at the gateway
// boundary. Message carries the server-supplied detail when present.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

func newAPIError(resp *resty.Response) *APIError {
	msg := gjson.GetBytes(resp.Body(), "detail").String()
	if msg == "" {
		msg = http.StatusText(resp.StatusCode())
	}
	return &APIError{StatusCode: resp.StatusCode(), Message: msg}
}

// ValidationError rejects a malformed request before network dispatch.
type ValidationError struct {
	cause error
}

func (e *ValidationError) Error() string {
	return "validation: " + e.cause.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.cause
}

// IsAuthError reports whether err is a 401 from the backend.
func IsAuthError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// ErrorMessage extracts the server-supplied message from err, falling
// back to the given generic message. Callers use it for inline
// feedback.
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
