package models

import (
	"fmt"
	"time"
)

const ProfileAgeMax = 99

type Profile struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UserID    uint       `json:"userId" gorm:"unique;not null"`
	Age       *int       `json:"age"`
	Phone     string     `json:"phone" gorm:"size:20"`
	BirthDate *time.Time `json:"birthDate" gorm:"type:date"`
	Preview   string     `json:"preview"`
}

func (p *Profile) ValidateAge() error {
	if p.Age != nil && (*p.Age < 0 || *p.Age > ProfileAgeMax) {
		return fmt.Errorf("invalid age: %d, must be at most %d", *p.Age, ProfileAgeMax)
	}
	return nil
}
