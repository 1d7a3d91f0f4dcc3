package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"hotelms/internal/database"
	"hotelms/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func createTestRoom(t *testing.T, db *gorm.DB, number string) *domain.Room {
	t.Helper()
	room := &domain.Room{
		Number:      number,
		Type:        domain.RoomSingle,
		NightlyRate: 100,
		Status:      domain.RoomVacant,
	}
	require.NoError(t, NewRoomRepository(db).Create(context.Background(), room))
	return room
}

func createTestBooking(t *testing.T, db *gorm.DB, roomID int64, reference string, checkIn, checkOut time.Time) *domain.Booking {
	t.Helper()
	b := &domain.Booking{
		Reference: reference,
		RoomID:    roomID,
		GuestName: "Jane Doe",
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Status:    domain.BookingReserved,
	}
	require.NoError(t, NewBookingRepository(db).Create(context.Background(), b))
	return b
}

func TestHasActiveOverlap_BackToBackDoesNotConflict(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	room := createTestRoom(t, db, "101")
	bookings := NewBookingRepository(db)

	createTestBooking(t, db, room.ID, "ref-1", day(2025, time.January, 1), day(2025, time.January, 3))

	// The next stay starts on the previous checkout day.
	overlap, err := bookings.HasActiveOverlap(ctx, room.ID, day(2025, time.January, 3), day(2025, time.January, 5))

	assert.NoError(t, err)
	assert.False(t, overlap)
}

func TestHasActiveOverlap_IntrusionConflicts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	room := createTestRoom(t, db, "101")
	bookings := NewBookingRepository(db)

	createTestBooking(t, db, room.ID, "ref-1", day(2025, time.January, 1), day(2025, time.January, 3))

	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
	}{
		{"starts inside", day(2025, time.January, 2), day(2025, time.January, 4)},
		{"ends inside", day(2024, time.December, 30), day(2025, time.January, 2)},
		{"contains the stay", day(2024, time.December, 30), day(2025, time.January, 5)},
		{"contained by the stay", day(2025, time.January, 1), day(2025, time.January, 2)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			overlap, err := bookings.HasActiveOverlap(ctx, room.ID, tc.checkIn, tc.checkOut)
			assert.NoError(t, err)
			assert.True(t, overlap)
		})
	}
}

func TestHasActiveOverlap_OtherRoomDoesNotConflict(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	roomA := createTestRoom(t, db, "101")
	roomB := createTestRoom(t, db, "102")
	bookings := NewBookingRepository(db)

	createTestBooking(t, db, roomA.ID, "ref-1", day(2025, time.January, 1), day(2025, time.January, 3))

	overlap, err := bookings.HasActiveOverlap(ctx, roomB.ID, day(2025, time.January, 1), day(2025, time.January, 3))

	assert.NoError(t, err)
	assert.False(t, overlap)
}

func TestHasActiveOverlap_CancelledDoesNotBlock(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	room := createTestRoom(t, db, "101")
	bookings := NewBookingRepository(db)

	b := createTestBooking(t, db, room.ID, "ref-1", day(2025, time.January, 1), day(2025, time.January, 3))
	require.NoError(t, bookings.MarkCancelled(ctx, b.ID, time.Now()))

	overlap, err := bookings.HasActiveOverlap(ctx, room.ID, day(2025, time.January, 1), day(2025, time.January, 3))

	assert.NoError(t, err)
	assert.False(t, overlap)
}

func TestHasActiveOverlap_CheckedOutDoesNotBlock(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	room := createTestRoom(t, db, "101")
	bookings := NewBookingRepository(db)

	b := createTestBooking(t, db, room.ID, "ref-1", day(2025, time.January, 1), day(2025, time.January, 3))
	require.NoError(t, bookings.MarkCheckedIn(ctx, b.ID, room.ID, time.Now()))

	bill := &domain.Bill{
		BookingID:   b.ID,
		Nights:      2,
		NightlyRate: 100,
		Total:       200,
		Status:      domain.PaymentUnpaid,
		IssuedAt:    time.Now(),
	}
	require.NoError(t, bookings.MarkCheckedOut(ctx, b.ID, room.ID, time.Now(), day(2025, time.January, 3), bill))

	overlap, err := bookings.HasActiveOverlap(ctx, room.ID, day(2025, time.January, 1), day(2025, time.January, 3))

	assert.NoError(t, err)
	assert.False(t, overlap)
}

func TestMarkCheckedIn_OccupiesRoom(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	room := createTestRoom(t, db, "101")
	bookings := NewBookingRepository(db)
	rooms := NewRoomRepository(db)

	b := createTestBooking(t, db, room.ID, "ref-1", day(2025, time.January, 1), day(2025, time.January, 3))
	at := time.Now()
	require.NoError(t, bookings.MarkCheckedIn(ctx, b.ID, room.ID, at))

	got, err := bookings.GetByReference(ctx, "ref-1")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCheckedIn, got.Status)
	assert.NotNil(t, got.CheckedInAt)

	updated, err := rooms.GetByID(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoomOccupied, updated.Status)
}

func TestMarkCheckedOut_FreesRoomAndWritesBill(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	room := createTestRoom(t, db, "101")
	bookings := NewBookingRepository(db)
	rooms := NewRoomRepository(db)
	bills := NewBillRepository(db)

	b := createTestBooking(t, db, room.ID, "ref-1", day(2025, time.January, 1), day(2025, time.January, 5))
	require.NoError(t, bookings.MarkCheckedIn(ctx, b.ID, room.ID, time.Now()))

	// Early departure restamps the checkout date the bill was computed from.
	departure := day(2025, time.January, 3)
	bill := &domain.Bill{
		BookingID:   b.ID,
		Nights:      2,
		NightlyRate: 100,
		Total:       200,
		Status:      domain.PaymentUnpaid,
		IssuedAt:    time.Now(),
	}
	require.NoError(t, bookings.MarkCheckedOut(ctx, b.ID, room.ID, time.Now(), departure, bill))
	assert.NotZero(t, bill.ID)

	got, err := bookings.GetByReference(ctx, "ref-1")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCheckedOut, got.Status)
	assert.NotNil(t, got.CheckedOutAt)
	assert.True(t, departure.Equal(got.CheckOut), "check_out should be restamped to the departure day")

	updated, err := rooms.GetByID(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoomVacant, updated.Status)

	stored, err := bills.GetByBookingID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Nights)
	assert.Equal(t, 200.0, stored.Total)
	assert.Equal(t, domain.PaymentUnpaid, stored.Status)
}
