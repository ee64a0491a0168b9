package models

import "time"

type Review struct {
	ID        uint `gorm:"primaryKey;autoIncrement"`
	ProductID uint `gorm:"not null;uniqueIndex:idx_review_user_product"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_review_user_product"`
	User      User `gorm:"foreignKey:UserID"`
	Rating    int  `gorm:"not null"`
	Text      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
