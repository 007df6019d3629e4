package services

import "errors"

// Sentinel errors the handlers map onto the HTTP error taxonomy. Nothing
// else crosses the handler boundary unwrapped.
var (
	ErrNotFound           = errors.New("chat not found")
	ErrUsernameTaken      = errors.New("username taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrValidation         = errors.New("username and password are required")
	ErrModelFailure       = errors.New("model request failed")
)
