package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized matches a StatusError carrying 401
var ErrUnauthorized = errors.New("api: unauthorized")

// StatusError is returned when the service answers with a non-2xx status
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("api: %s: status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("api: %s: status %d: %s", e.Op, e.StatusCode, e.Body)
}

// Is lets errors.Is(err, ErrUnauthorized) match 401 responses
func (e *StatusError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

// TransportError is returned when no response was received at all
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("api: %s: request failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsTransport reports whether err is a network-level failure rather than a
// response from the service
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsStatus reports whether err is a non-2xx response
func IsStatus(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}
