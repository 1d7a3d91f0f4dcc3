package inventory

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrForbidden     = errors.New("forbidden")
	ErrDuplicateRoom = errors.New("room number already exists")
	ErrRoomNotFound  = errors.New("room not found")
	ErrRoomOccupied  = errors.New("room has a checked-in guest")
)
