package controllers

import (
	"errors"
	"strconv"

	"myhotel/config"
	"myhotel/constants"
	"myhotel/dto"
	"myhotel/models"
	"myhotel/response"
	"myhotel/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func toReviewResponse(review *models.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:        review.ID,
		RoomID:    review.RoomID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
		Author: dto.UserInfo{
			ID:       review.Author.ID,
			Username: review.Author.Username,
		},
	}
}

// CreateReview tạo đánh giá cho phòng.
// Một người có thể đánh giá cùng một phòng nhiều lần.
func CreateReview(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	var request dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	review := models.Review{
		RoomID:   room.ID,
		AuthorID: user.ID,
		Rating:   request.Rating,
		Comment:  request.Comment,
	}

	if err := validator.ValidateReview(&review); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Create(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	review.Author = *user
	response.Created(c, toReviewResponse(&review))
}

// GetReviews trả về danh sách đánh giá, lọc được theo phòng
func GetReviews(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit <= 0 {
		limit = 10
	}

	tx := config.DB.Model(&models.Review{}).Preload("Author")
	if roomID := c.Query("room_id"); roomID != "" {
		tx = tx.Where("room_id = ?", roomID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var reviews []models.Review
	if err := tx.Order("created_at desc").Offset(page * limit).Limit(limit).Find(&reviews).Error; err != nil {
		response.ServerError(c)
		return
	}

	reviewResponses := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		reviewResponses = append(reviewResponses, toReviewResponse(&reviews[i]))
	}

	response.SuccessWithPagination(c, reviewResponses, page, limit, int(total))
}

// GetReviewDetail trả về chi tiết một đánh giá
func GetReviewDetail(c *gin.Context) {
	reviewID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID đánh giá không hợp lệ")
		return
	}

	var review models.Review
	if err := config.DB.Preload("Author").First(&review, reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, toReviewResponse(&review))
}

// UpdateReview cập nhật đánh giá. Chỉ tác giả sửa được.
func UpdateReview(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	reviewID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID đánh giá không hợp lệ")
		return
	}

	var review models.Review
	if err := config.DB.Preload("Author").First(&review, reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if review.AuthorID != user.ID {
		response.Forbidden(c)
		return
	}

	var request dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	review.Rating = request.Rating
	review.Comment = request.Comment

	if err := validator.ValidateReview(&review); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Save(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toReviewResponse(&review))
}

// DeleteReview xóa đánh giá. Tác giả hoặc admin xóa được.
func DeleteReview(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	reviewID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID đánh giá không hợp lệ")
		return
	}

	var review models.Review
	if err := config.DB.First(&review, reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if review.AuthorID != user.ID && user.Role != constants.RoleAdmin {
		response.Forbidden(c)
		return
	}

	if err := config.DB.Delete(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}
