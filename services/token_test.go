package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(UserInfo{UserId: 42, Role: 1}, 60, true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := GetUserIDFromToken(token)
	require.NoError(t, err)

	assert.Equal(t, uint(42), userID)
	assert.Equal(t, 1, role)
}

func TestGetUserIDFromTokenRejectsGarbage(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty token", ""},
		{"not a jwt", "abc"},
		{"wrong segment count", "a.b"},
		{"invalid payload", "aaa.!!!.ccc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := GetUserIDFromToken(tt.token)
			assert.Error(t, err)
		})
	}
}
