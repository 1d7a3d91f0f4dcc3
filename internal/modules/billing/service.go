package billing

import (
	"context"
	"errors"
	"time"

	"hotelms/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	bills    BillRepository
	bookings BookingReader
}

type RevenueReport struct {
	From        time.Time `json:"from"`
	To          time.Time `json:"to"`
	BillCount   int64     `json:"bill_count"`
	PaidTotal   float64   `json:"paid_total"`
	UnpaidTotal float64   `json:"unpaid_total"`
}

func NewService(bills BillRepository, bookings BookingReader) *Service {
	return &Service{
		bills:    bills,
		bookings: bookings,
	}
}

func (s *Service) GetByBooking(ctx context.Context, reference string) (*domain.Bill, error) {
	b, err := s.bookings.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	bill, err := s.bills.GetByBookingID(ctx, b.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillNotFound
		}
		return nil, err
	}
	return bill, nil
}

// MarkPaid settles a bill. Paying twice is rejected, not ignored, so
// the desk notices double entry.
func (s *Service) MarkPaid(ctx context.Context, actor domain.UserRole, billID int64) (*domain.Bill, error) {
	if !actor.CanOperateDesk() {
		return nil, ErrForbidden
	}

	bill, err := s.bills.GetByID(ctx, billID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillNotFound
		}
		return nil, err
	}
	if bill.Status == domain.PaymentPaid {
		return nil, ErrBillAlreadyPaid
	}

	now := time.Now()
	if err := s.bills.MarkPaid(ctx, bill.ID, now); err != nil {
		return nil, err
	}
	bill.Status = domain.PaymentPaid
	bill.PaidAt = &now
	return bill, nil
}

// Revenue aggregates bills issued in [from, to). Admin only.
func (s *Service) Revenue(ctx context.Context, actor domain.UserRole, from, to time.Time) (*RevenueReport, error) {
	if !actor.CanManageUsers() {
		return nil, ErrForbidden
	}
	if !to.After(from) {
		return nil, ErrValidation
	}

	summary, err := s.bills.RevenueBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return &RevenueReport{
		From:        from,
		To:          to,
		BillCount:   summary.BillCount,
		PaidTotal:   summary.PaidTotal,
		UnpaidTotal: summary.UnpaidTotal,
	}, nil
}
