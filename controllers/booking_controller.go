package controllers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"myhotel/config"
	"myhotel/constants"
	"myhotel/dto"
	apperrors "myhotel/errors"
	"myhotel/models"
	"myhotel/response"
	"myhotel/services"
	"myhotel/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// bookingOrderClause dịch tham số order_by thành mệnh đề ORDER BY.
// Hỗ trợ "room" và "user", thêm tiền tố "-" để đảo chiều, mặc định theo phòng.
func bookingOrderClause(orderBy string) string {
	desc := strings.HasPrefix(orderBy, "-")
	switch strings.TrimPrefix(orderBy, "-") {
	case "user":
		if desc {
			return "user_id desc"
		}
		return "user_id"
	default:
		if desc {
			return "room_id desc"
		}
		return "room_id"
	}
}

func toBookingResponse(booking *models.Booking) dto.BookingResponse {
	layout := validator.DateLayout
	return dto.BookingResponse{
		ID:        booking.ID,
		RoomID:    booking.RoomID,
		RoomName:  booking.Room.Name,
		UserID:    booking.UserID,
		StartDate: booking.StartDate.Format(layout),
		EndDate:   booking.EndDate.Format(layout),
		Status:    booking.Status,
		CreatedAt: booking.CreatedAt,
	}
}

// currentUser lấy user đang đăng nhập từ context
func currentUser(c *gin.Context) (*models.User, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		return nil, false
	}

	var user models.User
	if err := config.DB.First(&user, userID.(uint)).Error; err != nil {
		return nil, false
	}
	return &user, true
}

// CreateBooking đặt phòng cho user đang đăng nhập
func CreateBooking(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	start, end, err := validator.ValidateBookingDates(request.StartDate, request.EndDate)
	if err != nil {
		if appErr := apperrors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	facade := services.NewBookingFacade(config.DB)
	booking, err := facade.CreateBooking(user, request.RoomID, start, end)
	if err != nil {
		if appErr := apperrors.GetAppError(err); appErr != nil {
			switch appErr.Code {
			case apperrors.ErrCodeDBNotFound:
				response.NotFound(c)
			case apperrors.ErrCodeRoomUnavailable:
				response.Conflict(c, appErr.Message)
			default:
				response.BadRequest(c, appErr.Message)
			}
			return
		}
		response.ServerError(c)
		return
	}

	res := toBookingResponse(booking)
	response.Created(c, res)
}

// BookRoom xử lý form đặt phòng gửi từ trang chi tiết phòng
func BookRoom(c *gin.Context) {
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

	var form dto.BookRoomForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	start, end, err := validator.ValidateBookingDates(form.StartDate, form.EndDate)
	if err != nil {
		if appErr := apperrors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	facade := services.NewBookingFacade(config.DB)
	booking, err := facade.CreateBooking(user, uint(roomID), start, end)
	if err != nil {
		if appErr := apperrors.GetAppError(err); appErr != nil {
			switch appErr.Code {
			case apperrors.ErrCodeDBNotFound:
				response.NotFound(c)
			case apperrors.ErrCodeRoomUnavailable:
				response.Conflict(c, appErr.Message)
			default:
				response.BadRequest(c, appErr.Message)
			}
			return
		}
		response.ServerError(c)
		return
	}

	response.Created(c, toBookingResponse(booking))
}

// CancelBooking hủy đặt phòng của chính user.
// Đặt phòng đã được xác nhận thì không hủy được.
func CancelBooking(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID đặt phòng không hợp lệ")
		return
	}

	facade := services.NewBookingFacade(config.DB)
	booking, err := facade.CancelBooking(user, uint(bookingID))
	if err != nil {
		if errors.Is(err, apperrors.ErrBookingNotFound) {
			response.NotFound(c)
			return
		}
		if errors.Is(err, apperrors.ErrUnauthorized) {
			response.Forbidden(c)
			return
		}
		if appErr := apperrors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, toBookingResponse(booking))
}

// GetBookings trả về danh sách đặt phòng.
// Admin xem được tất cả, user thường chỉ xem của mình.
func GetBookings(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit <= 0 {
		limit = 10
	}

	tx := config.DB.Model(&models.Booking{}).Preload("Room")
	if user.Role != constants.RoleAdmin {
		tx = tx.Where("user_id = ?", user.ID)
	} else if v := c.Query("user_id"); v != "" {
		if userID, err := strconv.Atoi(v); err == nil {
			tx = tx.Where("user_id = ?", userID)
		}
	}

	if v := c.Query("room_id"); v != "" {
		if roomID, err := strconv.Atoi(v); err == nil {
			tx = tx.Where("room_id = ?", roomID)
		}
	}
	if v := c.Query("status"); v != "" {
		if status, err := strconv.Atoi(v); err == nil {
			tx = tx.Where("status = ?", status)
		}
	}
	if v := c.Query("fromDate"); v != "" {
		if fromDate, err := time.Parse(validator.DateLayout, v); err == nil {
			tx = tx.Where("start_date >= ?", fromDate)
		}
	}
	if v := c.Query("toDate"); v != "" {
		if toDate, err := time.Parse(validator.DateLayout, v); err == nil {
			tx = tx.Where("end_date <= ?", toDate)
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var bookings []models.Booking
	if err := tx.Order(bookingOrderClause(c.Query("order_by"))).Offset(page * limit).Limit(limit).Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		bookingResponses = append(bookingResponses, toBookingResponse(&bookings[i]))
	}

	response.SuccessWithPagination(c, bookingResponses, page, limit, int(total))
}

// GetBookingDetail trả về chi tiết một đặt phòng
func GetBookingDetail(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID đặt phòng không hợp lệ")
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("Room").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if user.Role != constants.RoleAdmin && booking.UserID != user.ID {
		response.Forbidden(c)
		return
	}

	response.Success(c, toBookingResponse(&booking))
}

// UpdateBooking cho admin sửa trực tiếp một đặt phòng
func UpdateBooking(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID đặt phòng không hợp lệ")
		return
	}

	var request dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("Room").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if request.StartDate != nil {
		startDate, err := time.Parse(validator.DateLayout, *request.StartDate)
		if err != nil {
			response.BadRequest(c, "Ngày nhận phòng không hợp lệ")
			return
		}
		booking.StartDate = startDate
	}
	if request.EndDate != nil {
		endDate, err := time.Parse(validator.DateLayout, *request.EndDate)
		if err != nil {
			response.BadRequest(c, "Ngày trả phòng không hợp lệ")
			return
		}
		booking.EndDate = endDate
	}
	if booking.EndDate.Before(booking.StartDate) {
		response.BadRequest(c, "Ngày trả phòng phải sau ngày nhận phòng")
		return
	}
	if request.Status != nil {
		switch *request.Status {
		case models.BookingStatusBooked, models.BookingStatusConfirmed, models.BookingStatusCancelled:
			booking.Status = *request.Status
		default:
			response.BadRequest(c, "Trạng thái không hợp lệ")
			return
		}
	}

	if err := config.DB.Save(&booking).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toBookingResponse(&booking))
}

// DeleteBooking cho admin xóa một đặt phòng
func DeleteBooking(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID đặt phòng không hợp lệ")
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if err := config.DB.Delete(&booking).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// ChangeBookingStatus đổi trạng thái đặt phòng theo máy trạng thái. Chỉ admin.
func ChangeBookingStatus(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID đặt phòng không hợp lệ")
		return
	}

	var request dto.ChangeBookingStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("Room").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	bookingService := services.NewBookingService(config.DB)

	switch request.Status {
	case models.BookingStatusConfirmed:
		err = bookingService.Confirm(&booking)
	case models.BookingStatusCancelled:
		err = bookingService.Cancel(&booking)
	default:
		response.BadRequest(c, "Trạng thái không hợp lệ")
		return
	}

	if err != nil {
		if appErr := apperrors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, toBookingResponse(&booking))
}
