package billing

import (
	"context"
	"time"

	"hotelms/internal/domain"
	"hotelms/internal/repository"
)

// BillRepository defines the bill persistence operations.
type BillRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Bill, error)
	GetByBookingID(ctx context.Context, bookingID int64) (*domain.Bill, error)
	MarkPaid(ctx context.Context, id int64, at time.Time) error
	RevenueBetween(ctx context.Context, from, to time.Time) (*repository.RevenueSummary, error)
}

// BookingReader resolves booking references for bill lookups.
type BookingReader interface {
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
}
