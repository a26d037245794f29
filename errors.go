package trello

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotImplemented is returned by operations the Trello API does not
// support through this client, such as Logout.
var ErrNotImplemented = errors.New("not implemented")

// UnauthorizedError is returned when the API responds with HTTP 401.
type UnauthorizedError struct {
	Status   int
	Body     string
	URL      string
	Response *http.Response
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("unauthorized: %s at %s", e.Body, e.URL)
}

// ResourceUnavailableError is returned for any non-200, non-401 response.
type ResourceUnavailableError struct {
	Status   int
	Body     string
	URL      string
	Response *http.Response
}

func (e *ResourceUnavailableError) Error() string {
	return fmt.Sprintf("resource unavailable (%d): %s at %s", e.Status, e.Body, e.URL)
}

// TokenError is returned when an operation needs an auth token and neither
// the call nor the client provides one.
type TokenError struct {
	Msg string
}

func (e *TokenError) Error() string {
	return e.Msg
}
