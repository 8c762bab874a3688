package models

import "time"

const (
	GenderUnset  = ""
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

type Customer struct {
	ID          uint       `gorm:"primaryKey"`
	PublicID    string     `gorm:"size:36;not null;uniqueIndex"`
	UserID      uint       `gorm:"not null;index"`
	FirstName   string     `gorm:"not null"`
	LastName    string     `gorm:"not null"`
	DateOfBirth *time.Time `gorm:"type:date"`
	Gender      string     `gorm:"not null;default:''"`
	HeightCm    *float64
	WeightKg    *float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
