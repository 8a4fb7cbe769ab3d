package controllers

import (
	"context"
	"fmt"
	"time"

	"myhotel/config"
	"myhotel/dto"
	"myhotel/models"
	"myhotel/response"
	"myhotel/services"
	"myhotel/validator"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
)

// GetProfile trả về trang cá nhân của user đang đăng nhập
// kèm danh sách đặt phòng của họ
func GetProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var profile models.Profile
	if err := config.DB.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		// User cũ chưa có profile thì tạo rỗng
		profile = models.Profile{UserID: user.ID}
		if err := config.DB.Create(&profile).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	bookingService := services.NewBookingService(config.DB)
	bookings, err := bookingService.ListByUser(user.ID)
	if err != nil {
		response.ServerError(c)
		return
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		bookingResponses = append(bookingResponses, toBookingResponse(&bookings[i]))
	}

	res := dto.ProfileResponse{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Age:       profile.Age,
		Phone:     profile.Phone,
		Preview:   profile.Preview,
		CreatedAt: user.CreatedAt,
		Bookings:  bookingResponses,
	}
	if profile.BirthDate != nil {
		res.BirthDate = profile.BirthDate.Format(validator.DateLayout)
	}

	response.Success(c, res)
}

// UpdateProfile cập nhật thông tin trang cá nhân
func UpdateProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var profile models.Profile
	if err := config.DB.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		profile = models.Profile{UserID: user.ID}
	}

	if request.Age != nil {
		profile.Age = request.Age
	}
	if request.Phone != nil {
		profile.Phone = *request.Phone
	}
	if request.BirthDate != nil {
		birthDate, err := time.Parse(validator.DateLayout, *request.BirthDate)
		if err != nil {
			response.BadRequest(c, "Ngày sinh không hợp lệ")
			return
		}
		profile.BirthDate = &birthDate
	}

	if err := validator.ValidateProfile(&profile); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if request.Email != nil {
		if err := validator.ValidateEmail(*request.Email); err != nil {
			response.ValidationError(c, "Email không hợp lệ")
			return
		}
		user.Email = *request.Email
		if err := config.DB.Model(user).Update("email", user.Email).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	if err := config.DB.Save(&profile).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// UploadProfilePreview tải ảnh đại diện của user lên Cloudinary
func UploadProfilePreview(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Không có file")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "Lỗi khi mở file")
		return
	}
	defer src.Close()

	ctx := context.Background()
	resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder:   fmt.Sprintf("profiles/user_%d", user.ID),
		PublicID: file.Filename,
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Model(&models.Profile{}).
		Where("user_id = ?", user.ID).
		Update("preview", resp.SecureURL).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"url": resp.SecureURL})
}
