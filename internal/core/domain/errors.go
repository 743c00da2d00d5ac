package domain

import "errors"

// Common domain errors
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidStatus      = errors.New("invalid complaint status")
	ErrUpstream           = errors.New("upstream store request failed")
)
