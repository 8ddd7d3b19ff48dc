package backend

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx answer from the storage backend, carrying whatever
// error text the backend put in its {"error": ...} body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("storage api: status %d", e.Status)
	}
	return fmt.Sprintf("storage api: status %d: %s", e.Status, e.Message)
}

// IsAuthFailure reports whether err is the backend rejecting the bearer
// token. Callers redirect to login on this.
func IsAuthFailure(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden
	}
	return false
}
