package inventory

import (
	"context"
	"errors"
	"iter"
	"strings"

	"hotelms/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const vacantBatchSize = 50

type Service struct {
	rooms    RoomRepository
	bookings BookingReader
	events   StatusPublisher
}

func NewService(rooms RoomRepository, bookings BookingReader, events StatusPublisher) *Service {
	return &Service{
		rooms:    rooms,
		bookings: bookings,
		events:   events,
	}
}

// AddRoom registers a new room. Admin only; numbers are unique.
func (s *Service) AddRoom(ctx context.Context, actor domain.UserRole, req AddRoomRequest) (*domain.Room, error) {
	if !actor.CanManageRooms() {
		return nil, ErrForbidden
	}

	number := strings.TrimSpace(req.Number)
	roomType := domain.RoomType(strings.ToLower(strings.TrimSpace(req.Type)))
	if number == "" || req.NightlyRate <= 0 || !validRoomType(roomType) {
		return nil, ErrValidation
	}

	exists, err := s.rooms.ExistsByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateRoom
	}

	room := &domain.Room{
		Number:      number,
		Type:        roomType,
		NightlyRate: req.NightlyRate,
		Status:      domain.RoomVacant,
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateRoom
		}
		return nil, err
	}

	return room, nil
}

// SetStatus is the administrative override. It refuses to take a room
// away from a checked-in guest; the ledger owns that transition.
func (s *Service) SetStatus(ctx context.Context, actor domain.UserRole, number string, status domain.RoomStatus) (*domain.Room, error) {
	if !actor.CanManageRooms() {
		return nil, ErrForbidden
	}
	if !validRoomStatus(status) {
		return nil, ErrValidation
	}

	room, err := s.rooms.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	if room.Status == status {
		return room, nil
	}

	if status != domain.RoomOccupied {
		occupied, err := s.bookings.HasCheckedIn(ctx, room.ID)
		if err != nil {
			return nil, err
		}
		if occupied {
			return nil, ErrRoomOccupied
		}
	}

	if err := s.rooms.UpdateStatus(ctx, room.ID, status); err != nil {
		return nil, err
	}
	room.Status = status

	if s.events != nil {
		s.events.RoomStatusChanged(room.Number, status)
	}

	return room, nil
}

// VacantRooms yields vacant rooms of the given type (any type when
// empty). The sequence is lazy and restartable: each range re-queries
// the store batch by batch, so it reflects current state rather than a
// snapshot taken when the iterator was built.
func (s *Service) VacantRooms(ctx context.Context, roomType domain.RoomType) iter.Seq2[domain.Room, error] {
	return func(yield func(domain.Room, error) bool) {
		for offset := 0; ; offset += vacantBatchSize {
			batch, err := s.rooms.ListVacantByType(ctx, roomType, vacantBatchSize, offset)
			if err != nil {
				yield(domain.Room{}, err)
				return
			}
			for _, room := range batch {
				if !yield(room, nil) {
					return
				}
			}
			if len(batch) < vacantBatchSize {
				return
			}
		}
	}
}

func (s *Service) GetRoom(ctx context.Context, number string) (*domain.Room, error) {
	room, err := s.rooms.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.List(ctx)
}

func validRoomType(t domain.RoomType) bool {
	for _, v := range domain.ValidRoomTypes() {
		if t == v {
			return true
		}
	}
	return false
}

func validRoomStatus(s domain.RoomStatus) bool {
	for _, v := range domain.ValidRoomStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
