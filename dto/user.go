package dto

import "time"

// ProfileResponse là DTO cho trang cá nhân
type ProfileResponse struct {
	UserID    uint              `json:"id"`
	Username  string            `json:"username"`
	Email     string            `json:"email"`
	Age       *int              `json:"age"`
	Phone     string            `json:"phone"`
	BirthDate string            `json:"birthDate,omitempty"`
	Preview   string            `json:"preview"`
	CreatedAt time.Time         `json:"createdAt"`
	Bookings  []BookingResponse `json:"bookings"`
}

// UpdateProfileRequest là DTO cho request cập nhật trang cá nhân
type UpdateProfileRequest struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	Age       *int    `json:"age"`
	Phone     *string `json:"phone"`
	BirthDate *string `json:"birthDate"`
}
