package services

import (
	"testing"

	"myhotel/models"

	"github.com/stretchr/testify/assert"
)

func TestShouldNotifyCancellation(t *testing.T) {
	tests := []struct {
		name           string
		previousStatus int
		want           bool
	}{
		{"booked gets notified", models.BookingStatusBooked, true},
		{"confirmed gets notified", models.BookingStatusConfirmed, true},
		{"already cancelled is skipped", models.BookingStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldNotifyCancellation(tt.previousStatus))
		})
	}
}
