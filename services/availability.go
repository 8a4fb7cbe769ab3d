package services

import (
	"time"

	"myhotel/models"

	"gorm.io/gorm"
)

// RangesOverlap kiểm tra hai khoảng ngày có giao nhau không, tính cả ngày biên
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	if aEnd.Before(bStart) {
		return false
	}
	if bEnd.Before(aStart) {
		return false
	}
	return true
}

// overlappingBookings lọc ra các booking giao với khoảng ngày cho trước
func overlappingBookings(bookings []models.Booking, startDate, endDate time.Time) []models.Booking {
	var overlapped []models.Booking
	for _, booking := range bookings {
		if RangesOverlap(booking.StartDate, booking.EndDate, startDate, endDate) {
			overlapped = append(overlapped, booking)
		}
	}
	return overlapped
}

// IsRoomBooked kiểm tra phòng đã có người đặt trong khoảng ngày chưa.
// Booking đã hủy không tính.
func IsRoomBooked(db *gorm.DB, roomID uint, startDate, endDate time.Time) (bool, error) {
	var bookings []models.Booking
	err := db.Model(&models.Booking{}).
		Where("room_id = ? AND status <> ?", roomID, models.BookingStatusCancelled).
		Find(&bookings).Error
	if err != nil {
		return false, err
	}
	return len(overlappingBookings(bookings, startDate, endDate)) > 0, nil
}

// BookedRoomIDs trả về tập ID các phòng đã có người đặt trong khoảng ngày
func BookedRoomIDs(db *gorm.DB, startDate, endDate time.Time) (map[uint]bool, error) {
	var bookings []models.Booking
	err := db.Model(&models.Booking{}).
		Where("status <> ?", models.BookingStatusCancelled).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}

	booked := make(map[uint]bool)
	for _, booking := range overlappingBookings(bookings, startDate, endDate) {
		booked[booking.RoomID] = true
	}
	return booked, nil
}
