package domain

import "errors"

// Sentinel errors shared across services. The API error handler maps each of
// these to a deterministic HTTP status; anything else becomes a generic 500.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access forbidden")
	ErrValidation         = errors.New("invalid input")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidOperation   = errors.New("operation not allowed")
	ErrDispatchFailed     = errors.New("mail dispatch failed")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)
