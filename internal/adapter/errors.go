package adapter

import "errors"

// Status-derived errors, see mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

var (
	// ErrNetwork wraps transport failures: refused connections, timeouts,
	// cancelled contexts.
	ErrNetwork = errors.New("network failure")
	// ErrInvalidResponse is returned when a 2xx body does not match the
	// expected schema.
	ErrInvalidResponse = errors.New("invalid server response")
	// ErrPartialResponse is returned together with a usable result from
	// which malformed rows were dropped.
	ErrPartialResponse = errors.New("malformed rows dropped")
)
