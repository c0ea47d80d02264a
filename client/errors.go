package client

import "fmt"

// TransportError reports a request that produced no usable response:
// connection failures, DNS errors and timeouts all land here.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// AuthorizationError reports a 401 response. The pipeline has already torn
// the session down by the time a caller sees this error; the caller still
// receives it and must handle its own local recovery.
type AuthorizationError struct {
	Detail string
}

func (e *AuthorizationError) Error() string {
	if e.Detail == "" {
		return "authorization rejected"
	}
	return "authorization rejected: " + e.Detail
}

// DomainError reports any non-2xx status other than 401, carrying the
// server-supplied detail for the caller to render.
type DomainError struct {
	Status int
	Detail string
}

func (e *DomainError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Detail)
}

// ValidationError reports caller input rejected before transmission, such
// as a required identifier left zero.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s %s", e.Field, e.Reason)
}
