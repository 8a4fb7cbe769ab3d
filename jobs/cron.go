package jobs

import (
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// PopularRoomRefresher định nghĩa interface cho việc cập nhật phòng nổi bật
type PopularRoomRefresher interface {
	RefreshPopularRooms(m *melody.Melody) error
}

// CheckInNotifier định nghĩa interface cho việc thông báo khách nhận phòng trong ngày
type CheckInNotifier interface {
	BroadcastTodayCheckIns(m *melody.Melody) error
}

var (
	popularRoomRefresher PopularRoomRefresher
	checkInNotifier      CheckInNotifier
)

// SetPopularRoomRefresher thiết lập implementation cho PopularRoomRefresher
func SetPopularRoomRefresher(refresher PopularRoomRefresher) {
	popularRoomRefresher = refresher
}

// SetCheckInNotifier thiết lập implementation cho CheckInNotifier
func SetCheckInNotifier(notifier CheckInNotifier) {
	checkInNotifier = notifier
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Cron job chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang chạy cập nhật phòng nổi bật lúc: %v", now)
		if popularRoomRefresher == nil {
			log.Printf("Lỗi: PopularRoomRefresher chưa được thiết lập")
			return
		}
		if err := popularRoomRefresher.RefreshPopularRooms(m); err != nil {
			log.Printf("Lỗi khi cập nhật phòng nổi bật: %v", err)
		}
	})
	if err != nil {
		return err
	}

	// Cron job chạy lúc 7h mỗi ngày
	_, err = c.AddFunc("0 7 * * *", func() {
		if checkInNotifier == nil {
			log.Printf("Lỗi: CheckInNotifier chưa được thiết lập")
			return
		}
		if err := checkInNotifier.BroadcastTodayCheckIns(m); err != nil {
			log.Printf("Lỗi khi thông báo khách nhận phòng: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
