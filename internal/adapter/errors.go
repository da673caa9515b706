package adapter

import "errors"

var (
	// ErrServerUnreachable wraps transport failures: refused connections,
	// timeouts, DNS errors.
	ErrServerUnreachable   = errors.New("server unreachable")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedResponse  = errors.New("unexpected server response")
)
