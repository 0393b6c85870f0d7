package quantum

import (
	"fmt"
	"net/http"

	"github.com/juju/errors"
)

// Quantum v1.0 reports some missing resources with its own fault codes instead of 404.
const (
	StatusNetworkNotFound = 420
	StatusPortNotFound    = 430
)

// HTTPError is returned when the Quantum API answers with a status the operation does not accept.
// It unwraps to a juju/errors classification so callers can use errors.Is(err, errors.NotFound).
type HTTPError struct {
	Operation  string
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("%s: %s %s returned %d", e.Operation, e.Method, e.URL, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Unwrap returns the classification of the status code, or nil when it has none.
func (e *HTTPError) Unwrap() error {
	return classify(e.StatusCode)
}

func classify(status int) error {
	switch {
	case isNotFound(status):
		return errors.NotFound
	case status == http.StatusUnauthorized:
		return errors.Unauthorized
	case status == http.StatusForbidden:
		return errors.Forbidden
	case status == http.StatusBadRequest:
		return errors.BadRequest
	case status == http.StatusMethodNotAllowed:
		return errors.MethodNotAllowed
	case status == http.StatusNotImplemented:
		return errors.NotImplemented
	}
	return nil
}

func isNotFound(status int) bool {
	return status == http.StatusNotFound || status == StatusNetworkNotFound || status == StatusPortNotFound
}
