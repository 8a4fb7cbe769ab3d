package models

import "time"

const (
	ReviewRatingMin       = 1
	ReviewRatingMax       = 5
	ReviewCommentMaxChars = 250
)

type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	RoomID    uint      `json:"roomId"`
	Room      Room      `json:"-" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
	AuthorID  uint      `json:"authorId"`
	Author    User      `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment" gorm:"size:250"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
