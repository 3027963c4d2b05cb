// Package transport provides the outbound HTTP capability for authpipe
// actions: send one request, get back the full response envelope or a
// distinguishable failure. A failure is either a StatusError carrying the
// HTTP error body (structured failure) or any other error (opaque failure,
// e.g. network unreachable).
package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Transport errors.
var (
	// ErrCircuitOpen is returned by the breaker decorator when the circuit is
	// open and the request was not sent.
	ErrCircuitOpen = errors.New("transport: circuit breaker is open")
)

// Envelope is the full response to a single request: status line, headers and
// raw body. Callers interpret the body via the configured extractors.
type Envelope struct {
	Status int
	Header http.Header
	Body   []byte
}

// OK reports whether the response status is in the 2xx range.
func (e *Envelope) OK() bool {
	return e.Status >= 200 && e.Status < 300
}

// Empty returns a placeholder envelope for actions that skip the network call
// (local-only logout, forced failures).
func Empty() *Envelope {
	return &Envelope{Status: 0, Header: http.Header{}, Body: []byte(`{}`)}
}

// Transport is the external capability the action pipeline consumes.
// Implementations must be safe for concurrent use; each call issues exactly
// one request and yields exactly one terminal outcome.
type Transport interface {
	Send(ctx context.Context, method, url string, body []byte) (*Envelope, error)
}

// StatusError is a structured HTTP failure: the server answered with an error
// status and (possibly) a body interpretable by the errors extractor.
type StatusError struct {
	Status int
	Header http.Header
	Body   []byte
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("transport: request failed with status %d", e.Status)
}

// Envelope returns the failure response as an Envelope so extractors can walk
// its body.
func (e *StatusError) Envelope() *Envelope {
	return &Envelope{Status: e.Status, Header: e.Header, Body: e.Body}
}

// AsStatusError unwraps err into a StatusError if it is one.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}
