package models

import "time"

type Contact struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"not null"`
	Message   string `gorm:"not null"`
	CreatedAt time.Time
}
