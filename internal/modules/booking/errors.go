package booking

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrForbidden         = errors.New("forbidden")
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomUnavailable   = errors.New("room unavailable for the requested dates")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidTransition = errors.New("invalid booking transition")
)
