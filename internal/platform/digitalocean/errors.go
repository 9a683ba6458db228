package digitalocean

import (
	"errors"
	"fmt"
)

// APIError is returned for any API response with status >= 300, or for a
// 2xx response carrying an embedded error status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("digitalocean: HTTP %d: %s", e.StatusCode, e.Body)
}

// IsNotFound reports whether err is an APIError with a 404 status.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}
