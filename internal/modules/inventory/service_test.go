package inventory

import (
	"context"
	"testing"

	"hotelms/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	if room != nil {
		room.ID = 11 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockRoomRepository) GetByNumber(ctx context.Context, number string) (*domain.Room, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoomRepository) UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockRoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) ListVacantByType(ctx context.Context, roomType domain.RoomType, limit, offset int) ([]domain.Room, error) {
	args := m.Called(ctx, roomType, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

type MockBookingReader struct {
	mock.Mock
}

func (m *MockBookingReader) HasCheckedIn(ctx context.Context, roomID int64) (bool, error) {
	args := m.Called(ctx, roomID)
	return args.Bool(0), args.Error(1)
}

type MockStatusPublisher struct {
	mock.Mock
}

func (m *MockStatusPublisher) RoomStatusChanged(number string, status domain.RoomStatus) {
	m.Called(number, status)
}

func TestService_AddRoom_Success(t *testing.T) {
	rooms := new(MockRoomRepository)
	rooms.On("ExistsByNumber", mock.Anything, "101").Return(false, nil)
	rooms.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(rooms, new(MockBookingReader), nil)

	room, err := service.AddRoom(context.Background(), domain.RoleAdmin, AddRoomRequest{
		Number:      "101",
		Type:        "double",
		NightlyRate: 100,
	})

	assert.NoError(t, err)
	assert.Equal(t, "101", room.Number)
	assert.Equal(t, domain.RoomVacant, room.Status)
}

func TestService_AddRoom_Duplicate(t *testing.T) {
	rooms := new(MockRoomRepository)
	rooms.On("ExistsByNumber", mock.Anything, "101").Return(true, nil)

	service := NewService(rooms, new(MockBookingReader), nil)

	_, err := service.AddRoom(context.Background(), domain.RoleAdmin, AddRoomRequest{
		Number:      "101",
		Type:        "double",
		NightlyRate: 100,
	})

	assert.ErrorIs(t, err, ErrDuplicateRoom)
}

func TestService_AddRoom_ForbiddenForStaff(t *testing.T) {
	service := NewService(new(MockRoomRepository), new(MockBookingReader), nil)

	_, err := service.AddRoom(context.Background(), domain.RoleStaff, AddRoomRequest{
		Number:      "101",
		Type:        "double",
		NightlyRate: 100,
	})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_SetStatus_RoomNotFound(t *testing.T) {
	rooms := new(MockRoomRepository)
	rooms.On("GetByNumber", mock.Anything, "404").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(rooms, new(MockBookingReader), nil)

	_, err := service.SetStatus(context.Background(), domain.RoleAdmin, "404", domain.RoomMaintenance)

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestService_SetStatus_RefusesVacancyWithGuestCheckedIn(t *testing.T) {
	rooms := new(MockRoomRepository)
	bookings := new(MockBookingReader)

	rooms.On("GetByNumber", mock.Anything, "101").Return(&domain.Room{
		ID:     11,
		Number: "101",
		Status: domain.RoomOccupied,
	}, nil)
	bookings.On("HasCheckedIn", mock.Anything, int64(11)).Return(true, nil)

	service := NewService(rooms, bookings, nil)

	_, err := service.SetStatus(context.Background(), domain.RoleAdmin, "101", domain.RoomVacant)

	assert.ErrorIs(t, err, ErrRoomOccupied)
}

func TestService_SetStatus_PublishesEvent(t *testing.T) {
	rooms := new(MockRoomRepository)
	bookings := new(MockBookingReader)
	events := new(MockStatusPublisher)

	rooms.On("GetByNumber", mock.Anything, "101").Return(&domain.Room{
		ID:     11,
		Number: "101",
		Status: domain.RoomVacant,
	}, nil)
	bookings.On("HasCheckedIn", mock.Anything, int64(11)).Return(false, nil)
	rooms.On("UpdateStatus", mock.Anything, int64(11), domain.RoomMaintenance).Return(nil)
	events.On("RoomStatusChanged", "101", domain.RoomMaintenance).Return()

	service := NewService(rooms, bookings, events)

	room, err := service.SetStatus(context.Background(), domain.RoleAdmin, "101", domain.RoomMaintenance)

	assert.NoError(t, err)
	assert.Equal(t, domain.RoomMaintenance, room.Status)
	events.AssertExpectations(t)
}

func TestService_VacantRooms_PagesThroughBatches(t *testing.T) {
	rooms := new(MockRoomRepository)

	first := make([]domain.Room, vacantBatchSize)
	for i := range first {
		first[i] = domain.Room{ID: int64(i + 1), Status: domain.RoomVacant, Type: domain.RoomDouble}
	}
	second := []domain.Room{{ID: 51, Status: domain.RoomVacant, Type: domain.RoomDouble}}

	rooms.On("ListVacantByType", mock.Anything, domain.RoomDouble, vacantBatchSize, 0).Return(first, nil).Once()
	rooms.On("ListVacantByType", mock.Anything, domain.RoomDouble, vacantBatchSize, vacantBatchSize).Return(second, nil).Once()

	service := NewService(rooms, new(MockBookingReader), nil)

	var count int
	for _, err := range service.VacantRooms(context.Background(), domain.RoomDouble) {
		assert.NoError(t, err)
		count++
	}

	assert.Equal(t, vacantBatchSize+1, count)
	rooms.AssertExpectations(t)
}

func TestService_VacantRooms_RestartReflectsCurrentState(t *testing.T) {
	rooms := new(MockRoomRepository)

	seq := NewService(rooms, new(MockBookingReader), nil).VacantRooms(context.Background(), "")

	// First pass sees two rooms, second pass sees one: each range
	// re-queries instead of replaying a snapshot.
	rooms.On("ListVacantByType", mock.Anything, domain.RoomType(""), vacantBatchSize, 0).
		Return([]domain.Room{{ID: 1}, {ID: 2}}, nil).Once()
	rooms.On("ListVacantByType", mock.Anything, domain.RoomType(""), vacantBatchSize, 0).
		Return([]domain.Room{{ID: 2}}, nil).Once()

	var firstPass, secondPass int
	for range seq {
		firstPass++
	}
	for range seq {
		secondPass++
	}

	assert.Equal(t, 2, firstPass)
	assert.Equal(t, 1, secondPass)
	rooms.AssertExpectations(t)
}

func TestService_VacantRooms_StopsEarlyWithoutExtraQueries(t *testing.T) {
	rooms := new(MockRoomRepository)

	first := make([]domain.Room, vacantBatchSize)
	for i := range first {
		first[i] = domain.Room{ID: int64(i + 1)}
	}
	rooms.On("ListVacantByType", mock.Anything, domain.RoomType(""), vacantBatchSize, 0).Return(first, nil).Once()

	service := NewService(rooms, new(MockBookingReader), nil)

	for room, err := range service.VacantRooms(context.Background(), "") {
		assert.NoError(t, err)
		if room.ID == 3 {
			break
		}
	}

	// Only the first batch was fetched.
	rooms.AssertExpectations(t)
}
