package inventory

import (
	"context"

	"hotelms/internal/domain"
)

// RoomRepository defines the room inventory persistence operations.
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByNumber(ctx context.Context, number string) (*domain.Room, error)
	ExistsByNumber(ctx context.Context, number string) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error
	List(ctx context.Context) ([]domain.Room, error)
	ListVacantByType(ctx context.Context, roomType domain.RoomType, limit, offset int) ([]domain.Room, error)
}

// BookingReader is the slice of the ledger the inventory consults
// before a status override.
type BookingReader interface {
	HasCheckedIn(ctx context.Context, roomID int64) (bool, error)
}

// StatusPublisher pushes room status changes to front-desk terminals.
type StatusPublisher interface {
	RoomStatusChanged(number string, status domain.RoomStatus)
}
