package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError. The wrapped
// message carries the status and the response body.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("resource not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// ErrUnexpectedStatus is returned for any other non-2xx status.
var ErrUnexpectedStatus = errors.New("unexpected http status")
