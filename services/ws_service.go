package services

import (
	"fmt"
	"log"
	"time"
	_ "time/tzdata"

	"myhotel/config"
	"myhotel/models"

	"github.com/olahol/melody"
)

const popularBookingThreshold = 3

// PopularRoomJob adapter cho jobs.PopularRoomRefresher
type PopularRoomJob struct{}

func (PopularRoomJob) RefreshPopularRooms(m *melody.Melody) error {
	return RefreshPopularRooms(m)
}

// CheckInDigestJob adapter cho jobs.CheckInNotifier
type CheckInDigestJob struct{}

func (CheckInDigestJob) BroadcastTodayCheckIns(m *melody.Melody) error {
	return BroadcastTodayCheckIns(m)
}

// BroadcastTodayCheckIns gửi thông báo websocket các phòng có khách nhận trong ngày
func BroadcastTodayCheckIns(m *melody.Melody) error {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		return fmt.Errorf("lỗi khi tải múi giờ: %w", err)
	}

	today := time.Now().In(loc).Format("2006-01-02")

	var bookings []models.Booking
	err = config.DB.Preload("Room").
		Where("start_date = ? AND status <> ?", today, models.BookingStatusCancelled).
		Find(&bookings).Error
	if err != nil {
		return fmt.Errorf("lỗi khi truy vấn đặt phòng nhận trong ngày: %w", err)
	}

	for _, booking := range bookings {
		message := fmt.Sprintf("Hôm nay phòng %s có khách nhận phòng.", booking.Room.Name)
		m.Broadcast([]byte(message))
	}

	return nil
}

// GetRecentBookingCounts đếm số booking không bị hủy của từng phòng trong 30 ngày qua
func GetRecentBookingCounts() (map[uint]int64, error) {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		return nil, fmt.Errorf("lỗi khi tải múi giờ: %w", err)
	}

	since := time.Now().In(loc).AddDate(0, 0, -30)

	type roomCount struct {
		RoomID uint
		Total  int64
	}
	var counts []roomCount

	err = config.DB.Model(&models.Booking{}).
		Select("room_id, count(*) as total").
		Where("status <> ? AND created_at >= ?", models.BookingStatusCancelled, since).
		Group("room_id").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("lỗi khi truy vấn số lượng đặt phòng: %w", err)
	}

	result := make(map[uint]int64, len(counts))
	for _, rc := range counts {
		result[rc.RoomID] = rc.Total
	}
	return result, nil
}

// RefreshPopularRooms cập nhật cờ is_popular dựa trên số booking gần đây
// và thông báo qua websocket khi có phòng đổi trạng thái
func RefreshPopularRooms(m *melody.Melody) error {
	db := config.DB

	counts, err := GetRecentBookingCounts()
	if err != nil {
		log.Println("Lỗi lấy số lượng đặt phòng:", err)
		return err
	}

	var rooms []models.Room
	if err := db.Find(&rooms).Error; err != nil {
		return err
	}

	tx := db.Begin()

	for _, room := range rooms {
		popular := counts[room.ID] >= popularBookingThreshold
		if popular == room.IsPopular {
			continue
		}

		if err := tx.Model(&models.Room{}).
			Where("id = ?", room.ID).
			Update("is_popular", popular).Error; err != nil {
			tx.Rollback()
			log.Printf("Lỗi cập nhật is_popular cho phòng %d: %v\n", room.ID, err)
			return err
		}

		// Thông báo
		var message string
		if popular {
			message = fmt.Sprintf("Phòng %s hiện đang được đặt nhiều.", room.Name)
		} else {
			message = fmt.Sprintf("Phòng %s không còn trong danh sách nổi bật.", room.Name)
		}
		m.Broadcast([]byte(message))
	}

	tx.Commit()

	// Cache danh sách phòng đã đổi, xóa để lần đọc sau nạp lại
	if config.RedisClient != nil {
		DeleteFromRedis(config.Ctx, config.RedisClient, "rooms:all")
	}

	log.Println("Hoàn tất cập nhật danh sách phòng nổi bật.")
	return nil
}
