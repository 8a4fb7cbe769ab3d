package dto

import "time"

// CreateBookingRequest là DTO cho request đặt phòng
type CreateBookingRequest struct {
	RoomID    uint   `json:"roomId" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

// BookingResponse là DTO cho thông tin booking
type BookingResponse struct {
	ID        uint      `json:"id"`
	RoomID    uint      `json:"roomId"`
	RoomName  string    `json:"roomName"`
	UserID    uint      `json:"userId"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Status    int       `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// BookRoomForm là form đặt phòng từ trang chi tiết phòng
type BookRoomForm struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
}

// UpdateBookingRequest là DTO cho request admin sửa booking
type UpdateBookingRequest struct {
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	Status    *int    `json:"status"`
}

// ChangeBookingStatusRequest là DTO cho request đổi trạng thái booking
type ChangeBookingStatusRequest struct {
	Status int `json:"status"`
}
