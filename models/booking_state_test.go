package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookedStateTransitions(t *testing.T) {
	t.Run("confirm booking", func(t *testing.T) {
		booking := &Booking{Status: BookingStatusBooked}
		state := GetBookingState(booking.Status)

		err := state.Confirm(booking)

		assert.NoError(t, err)
		assert.Equal(t, BookingStatusConfirmed, booking.Status)
	})

	t.Run("cancel booking", func(t *testing.T) {
		booking := &Booking{Status: BookingStatusBooked}
		state := GetBookingState(booking.Status)

		err := state.Cancel(booking)

		assert.NoError(t, err)
		assert.Equal(t, BookingStatusCancelled, booking.Status)
	})
}

func TestConfirmedStateTransitions(t *testing.T) {
	t.Run("cannot cancel confirmed booking", func(t *testing.T) {
		booking := &Booking{Status: BookingStatusConfirmed}
		state := GetBookingState(booking.Status)

		err := state.Cancel(booking)

		assert.Error(t, err)
		assert.Equal(t, BookingStatusConfirmed, booking.Status)
	})

	t.Run("cannot confirm twice", func(t *testing.T) {
		booking := &Booking{Status: BookingStatusConfirmed}
		state := GetBookingState(booking.Status)

		err := state.Confirm(booking)

		assert.Error(t, err)
	})
}

func TestCancelledStateTransitions(t *testing.T) {
	t.Run("cancel again keeps status", func(t *testing.T) {
		booking := &Booking{Status: BookingStatusCancelled}
		state := GetBookingState(booking.Status)

		err := state.Cancel(booking)

		assert.NoError(t, err)
		assert.Equal(t, BookingStatusCancelled, booking.Status)
	})

	t.Run("cannot confirm cancelled booking", func(t *testing.T) {
		booking := &Booking{Status: BookingStatusCancelled}
		state := GetBookingState(booking.Status)

		err := state.Confirm(booking)

		assert.Error(t, err)
	})
}

func TestGetBookingStateDefaultsToBooked(t *testing.T) {
	state := GetBookingState(99)

	assert.IsType(t, &BookedState{}, state)
}

func TestBookingStatusText(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   string
	}{
		{"booked", BookingStatusBooked, "booked"},
		{"confirmed", BookingStatusConfirmed, "confirmed"},
		{"cancelled", BookingStatusCancelled, "cancelled"},
		{"unknown defaults to booked", 42, "booked"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := &Booking{Status: tt.status}
			assert.Equal(t, tt.want, booking.StatusText())
		})
	}
}
