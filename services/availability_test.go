package services

import (
	"testing"
	"time"

	"myhotel/models"

	"github.com/stretchr/testify/assert"
)

func date(day int) time.Time {
	return time.Date(2026, time.June, day, 0, 0, 0, 0, time.UTC)
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name   string
		aStart int
		aEnd   int
		bStart int
		bEnd   int
		want   bool
	}{
		{"request starts on booked end date", 10, 15, 15, 20, true},
		{"request right after booked range", 10, 15, 16, 20, false},
		{"request right before booked range", 10, 15, 5, 9, false},
		{"request covers booked range", 10, 15, 1, 20, true},
		{"request inside booked range", 10, 15, 11, 14, true},
		{"request ends on booked start date", 10, 15, 5, 10, true},
		{"same range", 10, 15, 10, 15, true},
		{"single day overlap", 10, 10, 10, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RangesOverlap(date(tt.aStart), date(tt.aEnd), date(tt.bStart), date(tt.bEnd))
			assert.Equal(t, tt.want, got)

			// Giao nhau có tính đối xứng
			got = RangesOverlap(date(tt.bStart), date(tt.bEnd), date(tt.aStart), date(tt.aEnd))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOverlappingBookings(t *testing.T) {
	bookings := []models.Booking{
		{ID: 1, RoomID: 1, StartDate: date(1), EndDate: date(5)},
		{ID: 2, RoomID: 2, StartDate: date(10), EndDate: date(15)},
		{ID: 3, RoomID: 3, StartDate: date(15), EndDate: date(20)},
	}

	t.Run("range touching boundaries picks both sides", func(t *testing.T) {
		got := overlappingBookings(bookings, date(5), date(10))

		assert.Len(t, got, 2)
		assert.Equal(t, uint(1), got[0].ID)
		assert.Equal(t, uint(2), got[1].ID)
	})

	t.Run("range between bookings picks nothing", func(t *testing.T) {
		got := overlappingBookings(bookings, date(6), date(9))
		assert.Empty(t, got)
	})

	t.Run("range covering everything picks all", func(t *testing.T) {
		got := overlappingBookings(bookings, date(1), date(30))
		assert.Len(t, got, 3)
	})
}
