package validator

import (
	"regexp"
	"time"

	"myhotel/errors"
	"myhotel/models"

	"github.com/gin-gonic/gin/binding"
	v10 "github.com/go-playground/validator/v10"
)

// DateLayout định dạng ngày dùng trong request
const DateLayout = "02/01/2006"

// RegisterBindingValidations đăng ký các rule binding bổ sung cho gin
func RegisterBindingValidations() error {
	v, ok := binding.Validator.Engine().(*v10.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("roomtype", func(fl v10.FieldLevel) bool {
		switch fl.Field().String() {
		case "", models.RoomTypeLuxe, models.RoomTypeEconomy, models.RoomTypeStandard:
			return true
		}
		return false
	})
}

// ValidateUser validate thông tin user khi đăng ký
func ValidateUser(user *models.User) error {
	if user.Username == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên đăng nhập không được để trống", nil)
	}

	if len(user.Username) > 150 {
		return errors.NewAppError(errors.ErrCodeValidation, "Tên đăng nhập không được quá 150 ký tự", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	if err := ValidatePassword(user.Password); err != nil {
		return err
	}

	if user.Email != "" && !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	return nil
}

// ValidateRoom validate thông tin room
func ValidateRoom(room *models.Room) error {
	if room.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên phòng không được để trống", nil)
	}

	if room.Price < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Giá phòng không được âm", nil)
	}

	if err := room.ValidateCapacity(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Sức chứa phòng phải từ 1 đến 7 người", err)
	}

	if err := room.ValidateType(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Loại phòng không hợp lệ", err)
	}

	return nil
}

// ValidateReview validate thông tin đánh giá
func ValidateReview(review *models.Review) error {
	if review.RoomID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID phòng không được để trống", nil)
	}

	if review.AuthorID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID người dùng không được để trống", nil)
	}

	if review.Rating < models.ReviewRatingMin || review.Rating > models.ReviewRatingMax {
		return errors.NewAppError(errors.ErrCodeValidation, "Số sao đánh giá phải từ 1 đến 5", nil)
	}

	if len([]rune(review.Comment)) > models.ReviewCommentMaxChars {
		return errors.NewAppError(errors.ErrCodeValidation, "Nội dung đánh giá không được quá 250 ký tự", nil)
	}

	return nil
}

// ValidateBookingDates parse và kiểm tra khoảng ngày đặt phòng
func ValidateBookingDates(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày nhận phòng không hợp lệ", err)
	}

	end, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày trả phòng không hợp lệ", err)
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDateRange, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	return start, end, nil
}

// ValidateProfile validate thông tin trang cá nhân
func ValidateProfile(profile *models.Profile) error {
	if err := profile.ValidateAge(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Tuổi không được quá 99", err)
	}

	if profile.Phone != "" && !isValidPhone(profile.Phone) {
		return errors.NewAppError(errors.ErrCodeValidation, "Số điện thoại không hợp lệ", nil)
	}

	return nil
}

// ValidateEmail kiểm tra email hợp lệ
func ValidateEmail(email string) error {
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	return nil
}

// ValidatePassword kiểm tra mật khẩu hợp lệ
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}
	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10,11}$`)
	return phoneRegex.MatchString(phone)
}
