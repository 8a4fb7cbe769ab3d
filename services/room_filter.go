package services

import (
	"sort"
	"strings"

	"myhotel/dto"
	"myhotel/models"
)

// SortRoomsBy sắp xếp danh sách phòng theo khóa yêu cầu.
// Tiền tố "-" là sắp xếp giảm dần. Mặc định là "-created_at".
func SortRoomsBy(rooms []models.Room, sortBy string) {
	if sortBy == "" {
		sortBy = "-created_at"
	}

	desc := strings.HasPrefix(sortBy, "-")
	key := strings.TrimPrefix(sortBy, "-")

	less := func(i, j int) bool {
		a, b := rooms[i], rooms[j]
		switch key {
		case "name":
			if a.Name != b.Name {
				return a.Name < b.Name
			}
		case "price":
			if a.Price != b.Price {
				return a.Price < b.Price
			}
		case "capacity":
			if a.Capacity != b.Capacity {
				return a.Capacity < b.Capacity
			}
		default:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
		}
		return a.ID < b.ID
	}

	if desc {
		sort.SliceStable(rooms, func(i, j int) bool { return less(j, i) })
	} else {
		sort.SliceStable(rooms, less)
	}
}

// MatchRoom kiểm tra phòng có thỏa các tiêu chí lọc không.
// Trường Name so khớp chính xác, trường Search tìm chuỗi con
// trong tên và mô tả, không phân biệt hoa thường.
func MatchRoom(room *models.Room, filter *dto.RoomFilterRequest) bool {
	if filter.Search != "" {
		q := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(room.Name), q) &&
			!strings.Contains(strings.ToLower(room.Description), q) {
			return false
		}
	}
	if filter.PriceMin != nil && room.Price < *filter.PriceMin {
		return false
	}
	if filter.PriceMax != nil && room.Price > *filter.PriceMax {
		return false
	}
	if filter.Type != "" {
		if room.Type == nil || *room.Type != filter.Type {
			return false
		}
	}
	if filter.Name != "" && room.Name != filter.Name {
		return false
	}
	if filter.Capacity != nil && room.Capacity != *filter.Capacity {
		return false
	}
	if filter.IsPopular != nil && room.IsPopular != *filter.IsPopular {
		return false
	}
	return true
}

// FilterRooms áp bộ lọc lên danh sách phòng đã sắp xếp.
// booked là tập ID các phòng bị loại do đã có người đặt, có thể nil.
func FilterRooms(rooms []models.Room, filter *dto.RoomFilterRequest, booked map[uint]bool) []models.Room {
	result := make([]models.Room, 0, len(rooms))
	for i := range rooms {
		room := &rooms[i]
		if booked != nil && booked[room.ID] {
			continue
		}
		if !MatchRoom(room, filter) {
			continue
		}
		result = append(result, *room)
	}
	return result
}

// PaginateRooms cắt trang từ danh sách phòng đã lọc
func PaginateRooms(rooms []models.Room, page, limit int) []models.Room {
	if page < 0 {
		page = 0
	}
	if limit <= 0 {
		limit = 10
	}

	start := page * limit
	if start >= len(rooms) {
		return []models.Room{}
	}
	end := start + limit
	if end > len(rooms) {
		end = len(rooms)
	}
	return rooms[start:end]
}
