package httpclient

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrUnauthorized = errors.New("unauthorized, please log in again")
	ErrBadRequest   = errors.New("bad request")
	ErrServerError  = errors.New("server error, please try again later")
	ErrNetwork      = errors.New("network error, please check the connection")
)

// APIError classifies a failed call against the platform API.
// StatusCode is zero when no response was received.
type APIError struct {
	StatusCode int
	Message    string
	kind       error
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return e.kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.kind.Error(), e.Message)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

func classify(statusCode int) error {
	switch {
	case statusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case statusCode == http.StatusBadRequest:
		return ErrBadRequest
	case statusCode >= http.StatusInternalServerError:
		return ErrServerError
	default:
		return ErrNetwork
	}
}

// CheckResponse turns a transport error or a non-2xx response into an APIError.
// It returns nil for successful responses.
func CheckResponse(resp *BaseResponse, callErr error) error {
	if callErr != nil {
		return &APIError{kind: ErrNetwork, Message: callErr.Error()}
	}
	if resp == nil {
		return &APIError{kind: ErrNetwork}
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    strings.TrimSpace(string(resp.Body)),
		kind:       classify(resp.StatusCode),
	}
}
