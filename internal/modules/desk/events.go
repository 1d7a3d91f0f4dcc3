package desk

import (
	"time"

	"hotelms/internal/domain"
)

const (
	EventBookingReserved   = "booking.reserved"
	EventBookingCheckedIn  = "booking.checked_in"
	EventBookingCheckedOut = "booking.checked_out"
	EventBookingCancelled  = "booking.cancelled"
	EventRoomStatusChanged = "room.status_changed"
)

// Event is the envelope pushed to terminals. Optional fields are
// omitted per event type.
type Event struct {
	Type       string     `json:"type"`
	Reference  string     `json:"reference,omitempty"`
	RoomNumber string     `json:"room_number,omitempty"`
	RoomStatus string     `json:"room_status,omitempty"`
	CheckIn    *time.Time `json:"check_in,omitempty"`
	CheckOut   *time.Time `json:"check_out,omitempty"`
	Total      *float64   `json:"total,omitempty"`
	At         time.Time  `json:"at"`
}

func (h *Hub) BookingReserved(reference, roomNumber string, checkIn, checkOut time.Time) {
	h.Broadcast(Event{
		Type:       EventBookingReserved,
		Reference:  reference,
		RoomNumber: roomNumber,
		CheckIn:    &checkIn,
		CheckOut:   &checkOut,
		At:         time.Now(),
	})
}

func (h *Hub) BookingCheckedIn(reference, roomNumber string) {
	h.Broadcast(Event{
		Type:       EventBookingCheckedIn,
		Reference:  reference,
		RoomNumber: roomNumber,
		At:         time.Now(),
	})
}

func (h *Hub) BookingCheckedOut(reference, roomNumber string, total float64) {
	h.Broadcast(Event{
		Type:       EventBookingCheckedOut,
		Reference:  reference,
		RoomNumber: roomNumber,
		Total:      &total,
		At:         time.Now(),
	})
}

func (h *Hub) BookingCancelled(reference, roomNumber string) {
	h.Broadcast(Event{
		Type:       EventBookingCancelled,
		Reference:  reference,
		RoomNumber: roomNumber,
		At:         time.Now(),
	})
}

func (h *Hub) RoomStatusChanged(roomNumber string, status domain.RoomStatus) {
	h.Broadcast(Event{
		Type:       EventRoomStatusChanged,
		RoomNumber: roomNumber,
		RoomStatus: string(status),
		At:         time.Now(),
	})
}
