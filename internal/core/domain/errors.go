package domain

import "errors"

// Authentication errors
var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrAccountConflict   = errors.New("email belongs to an account in the other portal")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrInactiveAccount   = errors.New("account is inactive")
	ErrAlreadyRegistered = errors.New("employee already registered")
	ErrSignupDisabled    = errors.New("admin sign-up is disabled")
	ErrTokenInvalid      = errors.New("token invalid")
)

// Common domain errors
var (
	ErrStorageFailure = errors.New("storage failure")
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("resource not found")
	ErrInUse          = errors.New("resource in use")
	ErrInvalidState   = errors.New("invalid state transition")
	ErrDuplicateEntry = errors.New("duplicate entry")
)
