package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func parseSchema(t *testing.T, model interface{}) *schema.Schema {
	t.Helper()
	s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	return s
}

func assertCascade(t *testing.T, s *schema.Schema, relation string) {
	t.Helper()
	rel, ok := s.Relationships.Relations[relation]
	require.True(t, ok, "thiếu quan hệ %s trên %s", relation, s.Name)

	constraint := rel.ParseConstraint()
	require.NotNil(t, constraint, "thiếu constraint cho %s trên %s", relation, s.Name)
	assert.Equal(t, "CASCADE", constraint.OnDelete)
}

func TestDeletingUserCascades(t *testing.T) {
	user := parseSchema(t, &User{})

	assertCascade(t, user, "Profile")
	assertCascade(t, user, "Bookings")
	assertCascade(t, user, "Reviews")

	assertCascade(t, parseSchema(t, &Booking{}), "User")
	assertCascade(t, parseSchema(t, &Review{}), "Author")
}

func TestDeletingRoomCascades(t *testing.T) {
	room := parseSchema(t, &Room{})

	assertCascade(t, room, "Bookings")
	assertCascade(t, room, "Reviews")

	assertCascade(t, parseSchema(t, &Booking{}), "Room")
	assertCascade(t, parseSchema(t, &Review{}), "Room")
}
