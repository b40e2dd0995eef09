package client

import (
	"encoding/json"
	"errors"
	"fmt"
)

// APIError is returned for any non-2xx response from the IRIS API. Body
// holds the decoded error payload when the server sent JSON; Message is the
// best human-readable summary available.
type APIError struct {
	StatusCode int
	Message    string
	Body       map[string]any
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API returned status %d", e.StatusCode)
}

func newAPIError(statusCode int, respBody []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	var body map[string]any
	if err := json.Unmarshal(respBody, &body); err == nil {
		apiErr.Body = body
		if msg, ok := body["error"].(string); ok && msg != "" {
			apiErr.Message = msg
		} else if msg, ok := body["message"].(string); ok && msg != "" {
			apiErr.Message = msg
		}
	}
	if apiErr.Message == "" && len(respBody) > 0 {
		apiErr.Message = string(respBody)
	}
	return apiErr
}

func asAPIError(err error, target **APIError) bool {
	return errors.As(err, target)
}
