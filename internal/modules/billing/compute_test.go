package billing

import (
	"testing"
	"time"

	"hotelms/internal/domain"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeTotal_ThreeNights(t *testing.T) {
	booking := &domain.Booking{
		CheckIn:  day(2025, time.January, 1),
		CheckOut: day(2025, time.January, 4),
	}
	room := &domain.Room{NightlyRate: 100}

	nights, total := ComputeTotal(booking, room)

	assert.Equal(t, 3, nights)
	assert.Equal(t, 300.0, total)
}

func TestComputeTotal_SameDayChargesOneNight(t *testing.T) {
	booking := &domain.Booking{
		CheckIn:  day(2025, time.March, 10),
		CheckOut: day(2025, time.March, 10),
	}
	room := &domain.Room{NightlyRate: 85.50}

	nights, total := ComputeTotal(booking, room)

	assert.Equal(t, 1, nights)
	assert.Equal(t, 85.50, total)
}

func TestComputeTotal_IgnoresTimeOfDay(t *testing.T) {
	booking := &domain.Booking{
		CheckIn:  time.Date(2025, time.June, 1, 23, 45, 0, 0, time.UTC),
		CheckOut: time.Date(2025, time.June, 3, 0, 15, 0, 0, time.UTC),
	}
	room := &domain.Room{NightlyRate: 120}

	nights, total := ComputeTotal(booking, room)

	assert.Equal(t, 2, nights)
	assert.Equal(t, 240.0, total)
}

func TestComputeTotal_RoundsToCents(t *testing.T) {
	booking := &domain.Booking{
		CheckIn:  day(2025, time.July, 1),
		CheckOut: day(2025, time.July, 4),
	}
	room := &domain.Room{NightlyRate: 33.333}

	nights, total := ComputeTotal(booking, room)

	assert.Equal(t, 3, nights)
	assert.Equal(t, 100.0, total)
}
