package session

import (
	"errors"
	"fmt"
)

// Sentinel errors for the non-HTTP failure kinds a call can produce.
// HTTP status failures are represented by [*StatusError] wrapped in one of
// the status sentinels below.
var (
	// ErrTransport marks a connection-level failure (refused connection,
	// DNS, TLS) that survived the retry policy.
	ErrTransport = errors.New("transport failure")
	// ErrDecode marks a malformed or unexpected response body, including a
	// body that is missing a required field.
	ErrDecode = errors.New("unexpected response body")
)

// Status sentinels mapped from HTTP response codes by [MapHTTPError] so that
// callers can use [errors.Is] for status-class error handling.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrGatewayTimeout      = errors.New("gateway timeout")
)

// StatusError carries the HTTP status of a failed request together with the
// server-supplied error code/message pair when the body contained one.
type StatusError struct {
	// Status is the HTTP response status code.
	Status int
	// Code is the application-level error code from a {code, message}
	// response envelope, or 0 when the body carried none.
	Code int
	// Message is the server-supplied error message, the raw body text, or
	// the standard status text when the body was empty.
	Message string
}

func (e *StatusError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("http %d: service error %d: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("http %d: %s", e.Status, e.Message)
}
