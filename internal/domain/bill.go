package domain

import "time"

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// Bill is issued exactly once, when a booking checks out. NightlyRate
// is snapshotted so later room rate changes do not rewrite history.
type Bill struct {
	ID          int64         `json:"id"`
	BookingID   int64         `json:"booking_id"`
	Nights      int           `json:"nights"`
	NightlyRate float64       `json:"nightly_rate"`
	Total       float64       `json:"total"`
	Status      PaymentStatus `json:"status"`
	IssuedAt    time.Time     `json:"issued_at"`
	PaidAt      *time.Time    `json:"paid_at,omitempty"`
}
