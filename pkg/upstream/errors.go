package upstream

import (
	"errors"
	"fmt"
)

// ErrNotAuthenticated is returned before any network call is made when no
// session token is available for the action.
var ErrNotAuthenticated = errors.New("not authenticated (auth_token cookie missing)")

// InvalidRequestError reports the first local validation failure found in a
// mutation payload. No network call has been made when it is returned.
type InvalidRequestError struct {
	Field  string
	Reason string
}

func (e *InvalidRequestError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// UpstreamError reports a reply the external API gave that does not match
// the expected success shape. It carries the raw status and body so the
// failure can be debugged after the fact.
type UpstreamError struct {
	Status  int
	Body    string
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s (%d)", e.Message, e.Status)
	}
	return fmt.Sprintf("upstream request failed (%d)", e.Status)
}

// NetworkError wraps a transport-level failure: DNS, timeout, refused
// connection. The call itself never produced a response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return "network error occurred: " + e.Err.Error() }

func (e *NetworkError) Unwrap() error { return e.Err }
