package dto

import "time"

// RoomResponse là DTO cho thông tin room
type RoomResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Capacity    int       `json:"capacity"`
	Type        *string   `json:"type"`
	Description string    `json:"description"`
	Preview     string    `json:"preview"`
	IsPopular   bool      `json:"isPopular"`
	CreatedAt   time.Time `json:"createdAt"`
}

// RoomDetailResponse là DTO cho trang chi tiết room
type RoomDetailResponse struct {
	Room    RoomResponse     `json:"room"`
	Reviews []ReviewResponse `json:"reviews"`
}

// CreateRoomRequest là DTO cho request tạo room
type CreateRoomRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	Capacity    int     `json:"capacity" binding:"required,min=1,max=7"`
	Type        *string `json:"type" binding:"omitempty,roomtype"`
	Description string  `json:"description"`
	IsPopular   bool    `json:"isPopular"`
}

// UpdateRoomRequest là DTO cho request cập nhật room
type UpdateRoomRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Capacity    *int     `json:"capacity"`
	Type        *string  `json:"type" binding:"omitempty,roomtype"`
	Description *string  `json:"description"`
	IsPopular   *bool    `json:"isPopular"`
}

// RoomFilterRequest là DTO cho bộ lọc tìm phòng.
// Tag form theo tên trường của form lọc trên trang danh sách.
type RoomFilterRequest struct {
	SortBy    string   `form:"sort_by"`
	PriceMin  *float64 `form:"min_price"`
	PriceMax  *float64 `form:"max_price"`
	Type      string   `form:"category"`
	Name      string   `form:"search"`
	Search    string   `form:"-"`
	Capacity  *int     `form:"capacity"`
	IsPopular *bool    `form:"is_popular"`
	StartDate string   `form:"start_date"`
	EndDate   string   `form:"end_date"`
	Page      int      `form:"page"`
	Limit     int      `form:"limit"`
}

// RoomListResponse là DTO cho danh sách room kèm thông báo lỗi lọc ngày
type RoomListResponse struct {
	Rooms      []RoomResponse `json:"rooms"`
	Message    string         `json:"message,omitempty"`
	Suggestion string         `json:"suggestion,omitempty"`
}
