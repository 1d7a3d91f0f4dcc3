package booking

import (
	"context"
	"time"

	"hotelms/internal/domain"
)

// BookingRepository defines the ledger persistence operations.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	HasActiveOverlap(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error)
	MarkCheckedIn(ctx context.Context, bookingID, roomID int64, at time.Time) error
	MarkCheckedOut(ctx context.Context, bookingID, roomID int64, at time.Time, checkOut time.Time, bill *domain.Bill) error
	MarkCancelled(ctx context.Context, bookingID int64, at time.Time) error
	ListByRoom(ctx context.Context, roomID int64) ([]domain.Booking, error)
	ListActive(ctx context.Context) ([]domain.Booking, error)
}

// RoomRepository is the slice of the inventory the ledger reads.
type RoomRepository interface {
	GetByNumber(ctx context.Context, number string) (*domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// EventPublisher pushes ledger transitions to front-desk terminals.
type EventPublisher interface {
	BookingReserved(reference, roomNumber string, checkIn, checkOut time.Time)
	BookingCheckedIn(reference, roomNumber string)
	BookingCheckedOut(reference, roomNumber string, total float64)
	BookingCancelled(reference, roomNumber string)
}
