package repository

import (
	"context"
	"time"

	"hotelms/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID           int64      `gorm:"column:id;primaryKey"`
	Reference    string     `gorm:"column:reference;uniqueIndex"`
	RoomID       int64      `gorm:"column:room_id;index"`
	GuestName    string     `gorm:"column:guest_name"`
	GuestContact *string    `gorm:"column:guest_contact"`
	CheckIn      time.Time  `gorm:"column:check_in"`
	CheckOut     time.Time  `gorm:"column:check_out"`
	Status       string     `gorm:"column:status"`
	CheckedInAt  *time.Time `gorm:"column:checked_in_at"`
	CheckedOutAt *time.Time `gorm:"column:checked_out_at"`
	CancelledAt  *time.Time `gorm:"column:cancelled_at"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var contact string
	if m.GuestContact != nil {
		contact = *m.GuestContact
	}

	return &domain.Booking{
		ID:           m.ID,
		Reference:    m.Reference,
		RoomID:       m.RoomID,
		GuestName:    m.GuestName,
		GuestContact: contact,
		CheckIn:      m.CheckIn,
		CheckOut:     m.CheckOut,
		Status:       domain.BookingStatus(m.Status),
		CheckedInAt:  m.CheckedInAt,
		CheckedOutAt: m.CheckedOutAt,
		CancelledAt:  m.CancelledAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var contact *string
	if b.GuestContact != "" {
		v := b.GuestContact
		contact = &v
	}

	return bookingModel{
		ID:           b.ID,
		Reference:    b.Reference,
		RoomID:       b.RoomID,
		GuestName:    b.GuestName,
		GuestContact: contact,
		CheckIn:      b.CheckIn,
		CheckOut:     b.CheckOut,
		Status:       string(b.Status),
		CheckedInAt:  b.CheckedInAt,
		CheckedOutAt: b.CheckedOutAt,
		CancelledAt:  b.CancelledAt,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).Where("reference = ?", reference).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// HasActiveOverlap reports whether an active booking holds the room
// for any part of the half-open range [checkIn, checkOut). Back-to-back
// stays (one checkout day equal to the next check-in day) do not overlap.
func (r *BookingRepository) HasActiveOverlap(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", []string{string(domain.BookingReserved), string(domain.BookingCheckedIn)}).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *BookingRepository) HasCheckedIn(ctx context.Context, roomID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("room_id = ? AND status = ?", roomID, string(domain.BookingCheckedIn)).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

// MarkCheckedIn flips the booking to checked_in and the room to
// occupied in one transaction.
func (r *BookingRepository) MarkCheckedIn(ctx context.Context, bookingID, roomID int64, at time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&bookingModel{}).Where("id = ?", bookingID).Updates(map[string]any{
			"status":        string(domain.BookingCheckedIn),
			"checked_in_at": at,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&roomModel{}).Where("id = ?", roomID).
			Update("status", string(domain.RoomOccupied)).Error
	})
}

// MarkCheckedOut closes the booking, frees the room and issues the
// bill atomically. The booking's check_out column is restamped with
// the actual departure date the bill was computed from.
func (r *BookingRepository) MarkCheckedOut(ctx context.Context, bookingID, roomID int64, at time.Time, checkOut time.Time, bill *domain.Bill) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&bookingModel{}).Where("id = ?", bookingID).Updates(map[string]any{
			"status":         string(domain.BookingCheckedOut),
			"checked_out_at": at,
			"check_out":      checkOut,
		}).Error; err != nil {
			return err
		}
		if err := tx.Model(&roomModel{}).Where("id = ?", roomID).
			Update("status", string(domain.RoomVacant)).Error; err != nil {
			return err
		}

		m := billModel{
			BookingID:   bill.BookingID,
			Nights:      bill.Nights,
			NightlyRate: bill.NightlyRate,
			Total:       bill.Total,
			Status:      string(bill.Status),
			IssuedAt:    bill.IssuedAt,
		}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		*bill = *toDomainBill(m)
		return nil
	})
}

func (r *BookingRepository) MarkCancelled(ctx context.Context, bookingID int64, at time.Time) error {
	return r.db.WithContext(ctx).Model(&bookingModel{}).Where("id = ?", bookingID).Updates(map[string]any{
		"status":       string(domain.BookingCancelled),
		"cancelled_at": at,
	}).Error
}

func (r *BookingRepository) ListByRoom(ctx context.Context, roomID int64) ([]domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("check_in ASC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(models), nil
}

func (r *BookingRepository) ListActive(ctx context.Context) ([]domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Where("status IN ?", []string{string(domain.BookingReserved), string(domain.BookingCheckedIn)}).
		Order("check_in ASC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(models), nil
}

func toDomainBookings(models []bookingModel) []domain.Booking {
	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out
}
