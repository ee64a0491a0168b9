package models

import "time"

type Product struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	Name           string    `gorm:"not null"`
	Slug           string    `gorm:"uniqueIndex;not null"`
	Description    string
	Price          float64   `gorm:"not null"`
	ImageURL       string
	CategoryID     *uint
	Category       *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	InStock        bool      `gorm:"default:true"`
	Specifications []ProductSpecification `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Reviews        []Review               `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ProductSpecification struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	ProductID uint   `gorm:"index;not null"`
	Name      string `gorm:"not null"`
	Value     string `gorm:"not null"`
}
