// ABOUTME: Backend error decoding into a typed APIError
// ABOUTME: Prefers the message field, falls back to error, then a generic string

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// APIError is a rejected backend request. Message carries the server's own
// wording when the response body provided one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsUnauthorized reports whether err is a backend rejection for a missing,
// invalid or expired token.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// parseAPIError turns a non-2xx response into an *APIError. The backend
// reports failures as {"message": ...} or {"error": ...}; anything else
// gets a generic fallback.
func parseAPIError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("request failed with status %d", resp.StatusCode),
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apiErr
	}

	var payload struct {
		Message string `json:"message"`
		Err     string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			apiErr.Message = payload.Message
		} else if payload.Err != "" {
			apiErr.Message = payload.Err
		}
	}
	return apiErr
}
