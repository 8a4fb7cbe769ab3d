package models

import "time"

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"size:150;unique;not null"`
	FirstName string    `json:"firstName" gorm:"size:150"`
	LastName  string    `json:"lastName" gorm:"size:150"`
	Email     string    `json:"email" gorm:"size:254"`
	Password  string    `json:"-"`
	Role      int       `json:"role" gorm:"default:0"`
	Status    int       `json:"status" gorm:"default:1"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Profile   *Profile  `json:"profile,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Bookings  []Booking `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Reviews   []Review  `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}
