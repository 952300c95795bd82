package api

import "errors"

var (
	// ErrUnavailable means the server could not be reached at all.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized covers rejected credentials, missing tokens and
	// policy denials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound means the requested user or message does not exist.
	ErrNotFound = errors.New("not found")
	// ErrBadRequest means the server rejected the request as malformed.
	ErrBadRequest = errors.New("bad request")
	// ErrServer covers every 5xx response, including failed registrations.
	ErrServer = errors.New("server error")
)
