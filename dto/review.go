package dto

import "time"

// CreateReviewRequest là DTO cho request đánh giá phòng
type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=250"`
}

// ReviewResponse là DTO cho thông tin đánh giá
type ReviewResponse struct {
	ID        uint      `json:"id"`
	RoomID    uint      `json:"roomId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	Author    UserInfo  `json:"author"`
}

// UserInfo là DTO rút gọn cho thông tin người dùng
type UserInfo struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}
