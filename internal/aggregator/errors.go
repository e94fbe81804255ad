package aggregator

import "fmt"

// APIError is a structured error returned by the aggregator. Upstream
// failures are surfaced to the caller as-is and never retried here.
type APIError struct {
	StatusCode int    `json:"-"`
	ErrorType  string `json:"error_type"`
	ErrorCode  string `json:"error_code"`
	Message    string `json:"error_message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("aggregator: %s (%s): %s", e.ErrorType, e.ErrorCode, e.Message)
}
