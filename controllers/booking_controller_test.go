package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingOrderClause(t *testing.T) {
	tests := []struct {
		name    string
		orderBy string
		want    string
	}{
		{"default is room", "", "room_id"},
		{"room ascending", "room", "room_id"},
		{"room descending", "-room", "room_id desc"},
		{"user ascending", "user", "user_id"},
		{"user descending", "-user", "user_id desc"},
		{"unknown falls back to room", "status", "room_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bookingOrderClause(tt.orderBy))
		})
	}
}
