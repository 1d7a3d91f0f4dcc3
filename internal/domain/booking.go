package domain

import "time"

type BookingStatus string

const (
	BookingReserved   BookingStatus = "reserved"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCheckedOut BookingStatus = "checked_out"
	BookingCancelled  BookingStatus = "cancelled"
)

// Active bookings hold the room against overlapping reservations.
func (s BookingStatus) Active() bool {
	return s == BookingReserved || s == BookingCheckedIn
}

type Booking struct {
	ID           int64         `json:"id"`
	Reference    string        `json:"reference"`
	RoomID       int64         `json:"room_id" validate:"required"`
	GuestName    string        `json:"guest_name" validate:"required"`
	GuestContact string        `json:"guest_contact,omitempty"`
	CheckIn      time.Time     `json:"check_in" validate:"required"`
	CheckOut     time.Time     `json:"check_out" validate:"required"`
	Status       BookingStatus `json:"status"`
	CheckedInAt  *time.Time    `json:"checked_in_at,omitempty"`
	CheckedOutAt *time.Time    `json:"checked_out_at,omitempty"`
	CancelledAt  *time.Time    `json:"cancelled_at,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
