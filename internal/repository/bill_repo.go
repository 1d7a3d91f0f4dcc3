package repository

import (
	"context"
	"time"

	"hotelms/internal/domain"

	"gorm.io/gorm"
)

type BillRepository struct {
	db *gorm.DB
}

func NewBillRepository(db *gorm.DB) *BillRepository {
	return &BillRepository{db: db}
}

type billModel struct {
	ID          int64      `gorm:"column:id;primaryKey"`
	BookingID   int64      `gorm:"column:booking_id;uniqueIndex"`
	Nights      int        `gorm:"column:nights"`
	NightlyRate float64    `gorm:"column:nightly_rate"`
	Total       float64    `gorm:"column:total"`
	Status      string     `gorm:"column:status"`
	IssuedAt    time.Time  `gorm:"column:issued_at"`
	PaidAt      *time.Time `gorm:"column:paid_at"`
}

func (billModel) TableName() string { return "bills" }

func toDomainBill(m billModel) *domain.Bill {
	return &domain.Bill{
		ID:          m.ID,
		BookingID:   m.BookingID,
		Nights:      m.Nights,
		NightlyRate: m.NightlyRate,
		Total:       m.Total,
		Status:      domain.PaymentStatus(m.Status),
		IssuedAt:    m.IssuedAt,
		PaidAt:      m.PaidAt,
	}
}

func (r *BillRepository) GetByID(ctx context.Context, id int64) (*domain.Bill, error) {
	var m billModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBill(m), nil
}

func (r *BillRepository) GetByBookingID(ctx context.Context, bookingID int64) (*domain.Bill, error) {
	var m billModel
	tx := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBill(m), nil
}

func (r *BillRepository) MarkPaid(ctx context.Context, id int64, at time.Time) error {
	return r.db.WithContext(ctx).Model(&billModel{}).Where("id = ?", id).Updates(map[string]any{
		"status":  string(domain.PaymentPaid),
		"paid_at": at,
	}).Error
}

// RevenueSummary aggregates bills issued in [from, to).
type RevenueSummary struct {
	BillCount   int64   `gorm:"column:bill_count"`
	PaidTotal   float64 `gorm:"column:paid_total"`
	UnpaidTotal float64 `gorm:"column:unpaid_total"`
}

func (r *BillRepository) RevenueBetween(ctx context.Context, from, to time.Time) (*RevenueSummary, error) {
	var s RevenueSummary
	q := `
SELECT COUNT(1) AS bill_count,
       COALESCE(SUM(CASE WHEN status = 'paid' THEN total ELSE 0 END), 0)   AS paid_total,
       COALESCE(SUM(CASE WHEN status = 'unpaid' THEN total ELSE 0 END), 0) AS unpaid_total
FROM bills
WHERE issued_at >= ? AND issued_at < ?
`
	tx := r.db.WithContext(ctx).Raw(q, from, to).Scan(&s)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &s, nil
}
