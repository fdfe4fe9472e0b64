package adapter

import "errors"

// Sentinel errors returned (wrapped) by [RemoteStore] implementations.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrMissingToken is returned before any I/O when a data call is made
	// without a bearer token.
	ErrMissingToken = errors.New("missing bearer token")
	// ErrMalformedResponse marks a response body that does not match the
	// expected schema.
	ErrMalformedResponse = errors.New("malformed response")
)
