package api

import (
	"fmt"
	"net/http"

	"github.com/freshcart/store-console/internal/core/domain"
)

// RequestError is a non-2xx response from the store API. Message carries
// the raw response body text, which the API uses for its error envelopes.
// A transport failure (no response at all) is reported with StatusCode 0.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("request failed: %s", e.Message)
	}
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// Is lets callers match missing records with errors.Is without losing the
// response body text.
func (e *RequestError) Is(target error) bool {
	return target == domain.ErrNotFound && e.StatusCode == http.StatusNotFound
}
