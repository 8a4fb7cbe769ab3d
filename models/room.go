package models

import (
	"fmt"
	"time"
)

// Room type constants
const (
	RoomTypeLuxe     = "luxe"
	RoomTypeEconomy  = "economy"
	RoomTypeStandard = "standard"
)

const (
	RoomCapacityMin = 1
	RoomCapacityMax = 7
)

type Room struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:50"`
	Price       float64   `json:"price" gorm:"type:decimal(8,2)"`
	Capacity    int       `json:"capacity"`
	Type        *string   `json:"type" gorm:"size:20"`
	Description string    `json:"description"`
	Preview     string    `json:"preview"`
	IsPopular   bool      `json:"isPopular" gorm:"default:false"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	Bookings    []Booking `json:"-" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
	Reviews     []Review  `json:"-" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
}

func (r *Room) ValidateCapacity() error {
	if r.Capacity < RoomCapacityMin || r.Capacity > RoomCapacityMax {
		return fmt.Errorf("invalid capacity: %d, must be between %d and %d", r.Capacity, RoomCapacityMin, RoomCapacityMax)
	}
	return nil
}

func (r *Room) ValidateType() error {
	if r.Type == nil || *r.Type == "" {
		return nil
	}
	switch *r.Type {
	case RoomTypeLuxe, RoomTypeEconomy, RoomTypeStandard:
		return nil
	}
	return fmt.Errorf("invalid room type: %s", *r.Type)
}
