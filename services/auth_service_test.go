package services

import (
	"errors"
	"testing"

	"myhotel/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLoginUser(t *testing.T) {
	ivan := models.User{ID: 1, Username: "ivan", Email: "ivan@example.com"}
	notFound := errors.New("không tìm thấy người dùng")

	t.Run("username match wins", func(t *testing.T) {
		byUsername := func(login string) (models.User, error) { return ivan, nil }
		byEmail := func(login string) (models.User, error) {
			t.Fatal("không được tìm theo email khi username đã khớp")
			return models.User{}, nil
		}

		user, err := resolveLoginUser("ivan", byUsername, byEmail)
		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
	})

	t.Run("falls back to email", func(t *testing.T) {
		byUsername := func(login string) (models.User, error) { return models.User{}, notFound }
		byEmail := func(login string) (models.User, error) {
			assert.Equal(t, "ivan@example.com", login)
			return ivan, nil
		}

		user, err := resolveLoginUser("ivan@example.com", byUsername, byEmail)
		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
	})

	t.Run("neither matches", func(t *testing.T) {
		miss := func(login string) (models.User, error) { return models.User{}, notFound }

		_, err := resolveLoginUser("ghost", miss, miss)
		assert.Error(t, err)
	})
}

func TestRandomPasswordIsNotEmptyAndVaries(t *testing.T) {
	a := RandomPassword()
	b := RandomPassword()

	require.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
