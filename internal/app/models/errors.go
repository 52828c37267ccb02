package models

import "errors"

// Domain specific errors for authentication, authorization and the shell.
var (
	ErrUnauthenticated = errors.New("authentication required or invalid credentials")
	ErrForbidden       = errors.New("action forbidden")
	ErrBadRequest      = errors.New("bad request")
	ErrUnknownShell    = errors.New("unknown shell")
	ErrUnknownUser     = errors.New("unknown user")
)
