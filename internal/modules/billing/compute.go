package billing

import (
	"math"
	"time"

	"hotelms/internal/domain"
)

// ComputeTotal derives the charge for a stay: whole days between the
// check-in and check-out dates, floored at one night (a same-day
// departure still pays for the room), times the nightly rate. Pure
// function of its inputs.
func ComputeTotal(b *domain.Booking, room *domain.Room) (nights int, total float64) {
	in := truncateToDay(b.CheckIn)
	out := truncateToDay(b.CheckOut)

	nights = int(out.Sub(in).Hours() / 24)
	if nights < 1 {
		nights = 1
	}

	total = math.Round(float64(nights)*room.NightlyRate*100) / 100
	return nights, total
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
