package services

import (
	"testing"
	"time"

	"myhotel/dto"
	"myhotel/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func sampleRooms() []models.Room {
	base := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	return []models.Room{
		{ID: 1, Name: "Hướng Dương", Price: 1500, Capacity: 2, Type: strPtr(models.RoomTypeLuxe), CreatedAt: base.AddDate(0, 0, 2)},
		{ID: 2, Name: "Hoa Sen", Price: 800, Capacity: 4, Type: strPtr(models.RoomTypeEconomy), CreatedAt: base.AddDate(0, 0, 1)},
		{ID: 3, Name: "Hoa Mai", Price: 1200, Capacity: 2, Type: strPtr(models.RoomTypeStandard), CreatedAt: base.AddDate(0, 0, 3)},
		{ID: 4, Name: "Hoa Đào", Price: 500, Capacity: 1, Type: nil, CreatedAt: base},
	}
}

func TestSortRoomsByDefaultsToNewestFirst(t *testing.T) {
	rooms := sampleRooms()

	SortRoomsBy(rooms, "")

	assert.Equal(t, uint(3), rooms[0].ID)
	assert.Equal(t, uint(1), rooms[1].ID)
	assert.Equal(t, uint(2), rooms[2].ID)
	assert.Equal(t, uint(4), rooms[3].ID)
}

func TestSortRoomsBy(t *testing.T) {
	tests := []struct {
		name    string
		sortBy  string
		wantIDs []uint
	}{
		{"price ascending", "price", []uint{4, 2, 3, 1}},
		{"price descending", "-price", []uint{1, 3, 2, 4}},
		{"name ascending", "name", []uint{3, 2, 4, 1}},
		{"created_at ascending", "created_at", []uint{4, 2, 1, 3}},
		{"capacity descending", "-capacity", []uint{2, 3, 1, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rooms := sampleRooms()
			SortRoomsBy(rooms, tt.sortBy)

			gotIDs := make([]uint, 0, len(rooms))
			for _, room := range rooms {
				gotIDs = append(gotIDs, room.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestMatchRoom(t *testing.T) {
	room := models.Room{ID: 1, Name: "Hoa Sen", Description: "Phòng nhìn ra hồ sen", Price: 1000, Capacity: 3, Type: strPtr(models.RoomTypeLuxe)}

	tests := []struct {
		name   string
		filter dto.RoomFilterRequest
		want   bool
	}{
		{"empty filter matches", dto.RoomFilterRequest{}, true},
		{"price min inclusive", dto.RoomFilterRequest{PriceMin: floatPtr(1000)}, true},
		{"price min excludes", dto.RoomFilterRequest{PriceMin: floatPtr(1001)}, false},
		{"price max inclusive", dto.RoomFilterRequest{PriceMax: floatPtr(1000)}, true},
		{"price max excludes", dto.RoomFilterRequest{PriceMax: floatPtr(999)}, false},
		{"type match", dto.RoomFilterRequest{Type: models.RoomTypeLuxe}, true},
		{"type mismatch", dto.RoomFilterRequest{Type: models.RoomTypeEconomy}, false},
		{"exact name match", dto.RoomFilterRequest{Name: "Hoa Sen"}, true},
		{"partial name does not match", dto.RoomFilterRequest{Name: "Hoa"}, false},
		{"search matches name substring", dto.RoomFilterRequest{Search: "sen"}, true},
		{"search matches description", dto.RoomFilterRequest{Search: "nhìn ra hồ"}, true},
		{"search misses both fields", dto.RoomFilterRequest{Search: "biển"}, false},
		{"capacity match", dto.RoomFilterRequest{Capacity: intPtr(3)}, true},
		{"capacity mismatch", dto.RoomFilterRequest{Capacity: intPtr(2)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchRoom(&room, &tt.filter))
		})
	}
}

func TestMatchRoomNilTypeNeverMatchesTypeFilter(t *testing.T) {
	room := models.Room{ID: 1, Name: "Hoa Sen", Price: 1000, Capacity: 3, Type: nil}

	assert.False(t, MatchRoom(&room, &dto.RoomFilterRequest{Type: models.RoomTypeStandard}))
	assert.True(t, MatchRoom(&room, &dto.RoomFilterRequest{}))
}

func TestFilterRoomsExcludesBooked(t *testing.T) {
	rooms := sampleRooms()
	booked := map[uint]bool{1: true, 3: true}

	got := FilterRooms(rooms, &dto.RoomFilterRequest{}, booked)

	assert.Len(t, got, 2)
	assert.Equal(t, uint(2), got[0].ID)
	assert.Equal(t, uint(4), got[1].ID)
}

func TestFilterRoomsCombinesCriteria(t *testing.T) {
	rooms := sampleRooms()
	filter := &dto.RoomFilterRequest{
		PriceMin: floatPtr(700),
		Capacity: intPtr(2),
	}

	got := FilterRooms(rooms, filter, nil)

	assert.Len(t, got, 2)
	for _, room := range got {
		assert.Equal(t, 2, room.Capacity)
		assert.GreaterOrEqual(t, room.Price, 700.0)
	}
}

func TestPaginateRooms(t *testing.T) {
	rooms := sampleRooms()

	t.Run("first page", func(t *testing.T) {
		got := PaginateRooms(rooms, 0, 2)
		assert.Len(t, got, 2)
		assert.Equal(t, rooms[0].ID, got[0].ID)
	})

	t.Run("last partial page", func(t *testing.T) {
		got := PaginateRooms(rooms, 1, 3)
		assert.Len(t, got, 1)
	})

	t.Run("page beyond range", func(t *testing.T) {
		got := PaginateRooms(rooms, 5, 10)
		assert.Empty(t, got)
	})

	t.Run("zero limit falls back to default", func(t *testing.T) {
		got := PaginateRooms(rooms, 0, 0)
		assert.Len(t, got, len(rooms))
	})
}
