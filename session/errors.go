package session

import "errors"

var (
	ErrNoSession    = errors.New("no active session")
	ErrAuthNotBound = errors.New("auth operations not bound to the store")
)
