package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrDuplicateIdentifier = errors.New("identifier already registered")
	ErrAccountDisabled     = errors.New("account disabled")
	ErrAccountLocked       = errors.New("account locked")
	ErrForbidden           = errors.New("forbidden")
	ErrUserNotFound        = errors.New("user not found")
	ErrValidation          = errors.New("validation error")
)
