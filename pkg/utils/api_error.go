package utils

import (
	"encoding/json"
	"fmt"
)

// APIError is returned by the provider clients when an upstream API answers
// with a non-2xx status. Body keeps the raw response so handlers can surface
// the provider's own diagnostics.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Body)
}

// Diagnostics returns the provider response as JSON when it is valid JSON,
// or as a plain string otherwise.
func (e *APIError) Diagnostics() interface{} {
	if len(e.Body) > 0 && json.Valid(e.Body) {
		return json.RawMessage(e.Body)
	}
	return string(e.Body)
}
