package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"hotelms/internal/domain"
	"hotelms/internal/modules/billing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// Service drives the booking state machine:
//
//	reserved -> checked_in -> checked_out
//	reserved -> cancelled
//
// Every other transition fails with ErrInvalidTransition.
type Service struct {
	bookings BookingRepository
	rooms    RoomRepository
	events   EventPublisher
}

func NewService(bookings BookingRepository, rooms RoomRepository, events EventPublisher) *Service {
	return &Service{
		bookings: bookings,
		rooms:    rooms,
		events:   events,
	}
}

// Reserve books a room for a guest over a half-open date range
// [check_in, check_out). The room stays vacant until check-in.
func (s *Service) Reserve(ctx context.Context, actor domain.UserRole, req ReserveRequest) (*domain.Booking, error) {
	if !actor.CanOperateDesk() {
		return nil, ErrForbidden
	}

	if strings.TrimSpace(req.GuestName) == "" {
		return nil, ErrValidation
	}
	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		return nil, ErrValidation
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		return nil, ErrValidation
	}
	if !checkOut.After(checkIn) {
		return nil, ErrValidation
	}

	room, err := s.rooms.GetByNumber(ctx, req.RoomNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	if room.Status == domain.RoomMaintenance {
		return nil, ErrRoomUnavailable
	}

	overlap, err := s.bookings.HasActiveOverlap(ctx, room.ID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, ErrRoomUnavailable
	}

	b := &domain.Booking{
		Reference:    uuid.NewString(),
		RoomID:       room.ID,
		GuestName:    strings.TrimSpace(req.GuestName),
		GuestContact: strings.TrimSpace(req.GuestContact),
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		Status:       domain.BookingReserved,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrRoomUnavailable
		}
		return nil, err
	}

	if s.events != nil {
		s.events.BookingReserved(b.Reference, room.Number, b.CheckIn, b.CheckOut)
	}

	return b, nil
}

// CheckIn moves a reserved booking to checked_in and occupies the room.
func (s *Service) CheckIn(ctx context.Context, actor domain.UserRole, reference string) (*domain.Booking, error) {
	if !actor.CanOperateDesk() {
		return nil, ErrForbidden
	}

	b, err := s.getByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if b.Status != domain.BookingReserved {
		return nil, ErrInvalidTransition
	}

	room, err := s.rooms.GetByID(ctx, b.RoomID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.bookings.MarkCheckedIn(ctx, b.ID, b.RoomID, now); err != nil {
		return nil, err
	}
	b.Status = domain.BookingCheckedIn
	b.CheckedInAt = &now

	if s.events != nil {
		s.events.BookingCheckedIn(b.Reference, room.Number)
	}

	return b, nil
}

// CheckOut closes a checked-in booking: frees the room, restamps the
// checkout date with the actual departure day and issues the bill, all
// in one transaction. Same-day departures still bill one night.
func (s *Service) CheckOut(ctx context.Context, actor domain.UserRole, reference string) (*domain.Booking, *domain.Bill, error) {
	if !actor.CanOperateDesk() {
		return nil, nil, ErrForbidden
	}

	b, err := s.getByReference(ctx, reference)
	if err != nil {
		return nil, nil, err
	}
	if b.Status != domain.BookingCheckedIn {
		return nil, nil, ErrInvalidTransition
	}

	room, err := s.rooms.GetByID(ctx, b.RoomID)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	departure := truncateToDay(now)
	b.CheckOut = departure

	nights, total := billing.ComputeTotal(b, room)
	bill := &domain.Bill{
		BookingID:   b.ID,
		Nights:      nights,
		NightlyRate: room.NightlyRate,
		Total:       total,
		Status:      domain.PaymentUnpaid,
		IssuedAt:    now,
	}

	if err := s.bookings.MarkCheckedOut(ctx, b.ID, b.RoomID, now, departure, bill); err != nil {
		return nil, nil, err
	}
	b.Status = domain.BookingCheckedOut
	b.CheckedOutAt = &now

	if s.events != nil {
		s.events.BookingCheckedOut(b.Reference, room.Number, bill.Total)
	}

	return b, bill, nil
}

// Cancel ends a reservation before check-in. Checked-in stays cannot
// be cancelled, only checked out.
func (s *Service) Cancel(ctx context.Context, actor domain.UserRole, reference string) (*domain.Booking, error) {
	if !actor.CanOperateDesk() {
		return nil, ErrForbidden
	}

	b, err := s.getByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if b.Status != domain.BookingReserved {
		return nil, ErrInvalidTransition
	}

	now := time.Now()
	if err := s.bookings.MarkCancelled(ctx, b.ID, now); err != nil {
		return nil, err
	}
	b.Status = domain.BookingCancelled
	b.CancelledAt = &now

	if s.events != nil {
		room, err := s.rooms.GetByID(ctx, b.RoomID)
		if err == nil {
			s.events.BookingCancelled(b.Reference, room.Number)
		}
	}

	return b, nil
}

func (s *Service) Get(ctx context.Context, reference string) (*domain.Booking, error) {
	return s.getByReference(ctx, reference)
}

func (s *Service) ListByRoom(ctx context.Context, roomNumber string) ([]domain.Booking, error) {
	room, err := s.rooms.GetByNumber(ctx, roomNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return s.bookings.ListByRoom(ctx, room.ID)
}

func (s *Service) ListActive(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.ListActive(ctx)
}

func (s *Service) getByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	b, err := s.bookings.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func parseDate(v string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(v))
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
