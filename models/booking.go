package models

import (
	"time"
)

// Booking status constants
const (
	BookingStatusBooked    = 0
	BookingStatusConfirmed = 1
	BookingStatusCancelled = 2
)

type Booking struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	RoomID    uint      `json:"roomId"`
	Room      Room      `json:"room" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
	UserID    uint      `json:"userId"`
	User      User      `json:"user" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	StartDate time.Time `json:"startDate" gorm:"type:date"`
	EndDate   time.Time `json:"endDate" gorm:"type:date"`
	Status    int       `json:"status" gorm:"default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// StatusText trả về tên trạng thái của booking
func (b *Booking) StatusText() string {
	switch b.Status {
	case BookingStatusConfirmed:
		return "confirmed"
	case BookingStatusCancelled:
		return "cancelled"
	default:
		return "booked"
	}
}
