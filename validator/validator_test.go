package validator

import (
	"testing"
	"time"

	"myhotel/errors"
	"myhotel/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestValidateUser(t *testing.T) {
	tests := []struct {
		name    string
		user    models.User
		wantErr bool
	}{
		{"valid user", models.User{Username: "ivan", Password: "secret123"}, false},
		{"valid user with email", models.User{Username: "ivan", Password: "secret123", Email: "ivan@example.com"}, false},
		{"empty username", models.User{Password: "secret123"}, true},
		{"empty password", models.User{Username: "ivan"}, true},
		{"short password", models.User{Username: "ivan", Password: "abc"}, true},
		{"bad email", models.User{Username: "ivan", Password: "secret123", Email: "not-an-email"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUser(&tt.user)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("secret123"))
	assert.Error(t, ValidatePassword("abc"))
}

func TestValidateUserShortPasswordCode(t *testing.T) {
	err := ValidateUser(&models.User{Username: "ivan", Password: "abc"})
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeInvalidPassword, appErr.Code)
}

func TestValidateRoom(t *testing.T) {
	tests := []struct {
		name    string
		room    models.Room
		wantErr bool
	}{
		{"valid room", models.Room{Name: "Hoa Sen", Price: 1000, Capacity: 2, Type: strPtr(models.RoomTypeLuxe)}, false},
		{"nil type is allowed", models.Room{Name: "Hoa Sen", Price: 1000, Capacity: 2}, false},
		{"empty name", models.Room{Price: 1000, Capacity: 2}, true},
		{"negative price", models.Room{Name: "Hoa Sen", Price: -1, Capacity: 2}, true},
		{"capacity too small", models.Room{Name: "Hoa Sen", Price: 1000, Capacity: 0}, true},
		{"capacity too big", models.Room{Name: "Hoa Sen", Price: 1000, Capacity: 8}, true},
		{"capacity at max", models.Room{Name: "Hoa Sen", Price: 1000, Capacity: 7}, false},
		{"unknown type", models.Room{Name: "Hoa Sen", Price: 1000, Capacity: 2, Type: strPtr("penthouse")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRoom(&tt.room)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateReview(t *testing.T) {
	longComment := make([]rune, 251)
	for i := range longComment {
		longComment[i] = 'a'
	}

	tests := []struct {
		name    string
		review  models.Review
		wantErr bool
	}{
		{"valid review", models.Review{RoomID: 1, AuthorID: 1, Rating: 5, Comment: "Phòng sạch"}, false},
		{"empty comment is allowed", models.Review{RoomID: 1, AuthorID: 1, Rating: 3}, false},
		{"rating too low", models.Review{RoomID: 1, AuthorID: 1, Rating: 0}, true},
		{"rating too high", models.Review{RoomID: 1, AuthorID: 1, Rating: 6}, true},
		{"missing room", models.Review{AuthorID: 1, Rating: 3}, true},
		{"missing author", models.Review{RoomID: 1, Rating: 3}, true},
		{"comment too long", models.Review{RoomID: 1, AuthorID: 1, Rating: 3, Comment: string(longComment)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReview(&tt.review)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateBookingDates(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		start, end, err := ValidateBookingDates("10/06/2026", "15/06/2026")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("single day booking", func(t *testing.T) {
		_, _, err := ValidateBookingDates("10/06/2026", "10/06/2026")
		assert.NoError(t, err)
	})

	t.Run("end before start", func(t *testing.T) {
		_, _, err := ValidateBookingDates("15/06/2026", "10/06/2026")
		assert.Error(t, err)
	})

	t.Run("bad start format", func(t *testing.T) {
		_, _, err := ValidateBookingDates("2026-06-10", "15/06/2026")
		assert.Error(t, err)
	})

	t.Run("bad end format", func(t *testing.T) {
		_, _, err := ValidateBookingDates("10/06/2026", "June 15")
		assert.Error(t, err)
	})
}

func TestValidateProfile(t *testing.T) {
	tests := []struct {
		name    string
		profile models.Profile
		wantErr bool
	}{
		{"empty profile", models.Profile{}, false},
		{"valid age", models.Profile{Age: intPtr(30)}, false},
		{"age at limit", models.Profile{Age: intPtr(99)}, false},
		{"age above limit", models.Profile{Age: intPtr(100)}, true},
		{"negative age", models.Profile{Age: intPtr(-1)}, true},
		{"valid phone", models.Profile{Phone: "0912345678"}, false},
		{"bad phone", models.Profile{Phone: "12ab"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProfile(&tt.profile)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
