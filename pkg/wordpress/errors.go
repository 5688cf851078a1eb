package wordpress

import (
	"encoding/json"
	"fmt"
)

// APIError is returned when WordPress answers with an unexpected status code.
// Body holds the raw response body as received.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("wordpress API %s error %d: %s", e.Op, e.StatusCode, e.Body)
}

// Detail decodes Body as a WordPress error object. ok is false when Body is not one.
func (e *APIError) Detail() (ErrorResponse, bool) {
	var resp ErrorResponse
	if err := json.Unmarshal([]byte(e.Body), &resp); err != nil || resp.Code == "" {
		return ErrorResponse{}, false
	}
	return resp, true
}
