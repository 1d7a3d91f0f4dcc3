package billing

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrForbidden       = errors.New("forbidden")
	ErrBillNotFound    = errors.New("bill not found")
	ErrBillAlreadyPaid = errors.New("bill already paid")
	ErrBookingNotFound = errors.New("booking not found")
)
