package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	IsStaff      bool   `gorm:"default:false"`
	Cart         *Cart  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Orders       []Order
	CreatedAt    time.Time
}
