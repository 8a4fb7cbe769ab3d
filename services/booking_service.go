package services

import (
	"errors"
	"time"

	apperrors "myhotel/errors"
	"myhotel/models"
	"myhotel/services/logger"
	"myhotel/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingService xử lý logic liên quan đến booking
type BookingService struct {
	db  *gorm.DB
	log logger.Logger
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{
		db:  db,
		log: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// Create tạo booking mới. Khóa dòng phòng trong transaction để hai yêu cầu
// trùng khoảng ngày không cùng đặt được một phòng.
func (s *BookingService) Create(userID, roomID uint, startDate, endDate time.Time) (*models.Booking, error) {
	if endDate.Before(startDate) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidDateRange, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	var booking models.Booking

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "Không tìm thấy phòng", err)
			}
			return err
		}

		booked, err := IsRoomBooked(tx, roomID, startDate, endDate)
		if err != nil {
			return err
		}
		if booked {
			return apperrors.NewAppError(apperrors.ErrCodeRoomUnavailable, "Phòng đã có người đặt trong khoảng ngày này", nil)
		}

		booking = models.Booking{
			RoomID:    roomID,
			UserID:    userID,
			StartDate: startDate,
			EndDate:   endDate,
			Status:    models.BookingStatusBooked,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		booking.Room = room
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Tạo booking %d cho phòng %d, user %d", booking.ID, roomID, userID)
	return &booking, nil
}

// GetByID lấy booking theo ID
func (s *BookingService) GetByID(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("Room").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// Cancel hủy booking theo máy trạng thái.
// Booking đã xác nhận không thể hủy, booking đã hủy thì giữ nguyên.
func (s *BookingService) Cancel(booking *models.Booking) error {
	state := models.GetBookingState(booking.Status)
	if err := state.Cancel(booking); err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidOperation, "Không thể hủy đặt phòng đã được xác nhận", err)
	}
	if err := s.db.Model(booking).Update("status", booking.Status).Error; err != nil {
		return err
	}
	s.log.Info("Hủy booking %d", booking.ID)
	return nil
}

// Confirm xác nhận booking
func (s *BookingService) Confirm(booking *models.Booking) error {
	state := models.GetBookingState(booking.Status)
	if err := state.Confirm(booking); err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidOperation, err.Error(), err)
	}
	return s.db.Model(booking).Update("status", booking.Status).Error
}

// ListByUser lấy danh sách booking của một user, mới nhất trước
func (s *BookingService) ListByUser(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Preload("Room").Where("user_id = ?", userID).Order("created_at desc").Find(&bookings).Error
	return bookings, err
}

// NotificationService xử lý logic gửi thông báo
type NotificationService struct{}

func (n *NotificationService) SendConfirmation(email string, booking *models.Booking) error {
	if email == "" {
		return nil
	}
	layout := "02/01/2006"
	return SendBookingEmail(email, booking.ID, booking.Room.Name,
		booking.StartDate.Format(layout), booking.EndDate.Format(layout))
}

func (n *NotificationService) SendCancellation(email string, booking *models.Booking) error {
	if email == "" {
		return nil
	}
	return SendCancellationEmail(email, booking.ID, booking.Room.Name)
}

// BookingFacade đơn giản hóa việc tương tác với các service
type BookingFacade struct {
	bookingService      *BookingService
	notificationService *NotificationService
}

// NewBookingFacade tạo instance mới của BookingFacade
func NewBookingFacade(db *gorm.DB) *BookingFacade {
	return &BookingFacade{
		bookingService:      NewBookingService(db),
		notificationService: &NotificationService{},
	}
}

// CreateBooking tạo booking mới và gửi email xác nhận
func (f *BookingFacade) CreateBooking(user *models.User, roomID uint, startDate, endDate time.Time) (*models.Booking, error) {
	booking, err := f.bookingService.Create(user.ID, roomID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	if err := f.notificationService.SendConfirmation(user.Email, booking); err != nil {
		utils.LogError("Lỗi gửi email xác nhận cho booking %d: %v", booking.ID, err)
	}

	return booking, nil
}

// shouldNotifyCancellation chỉ báo hủy khi booking chưa bị hủy từ trước
func shouldNotifyCancellation(previousStatus int) bool {
	return previousStatus != models.BookingStatusCancelled
}

// CancelBooking hủy booking và gửi email thông báo
func (f *BookingFacade) CancelBooking(user *models.User, bookingID uint) (*models.Booking, error) {
	booking, err := f.bookingService.GetByID(bookingID)
	if err != nil {
		return nil, err
	}

	if booking.UserID != user.ID {
		return nil, apperrors.ErrUnauthorized
	}

	previousStatus := booking.Status
	if err := f.bookingService.Cancel(booking); err != nil {
		return nil, err
	}

	if shouldNotifyCancellation(previousStatus) {
		if err := f.notificationService.SendCancellation(user.Email, booking); err != nil {
			utils.LogError("Lỗi gửi email hủy cho booking %d: %v", booking.ID, err)
		}
	}

	return booking, nil
}
