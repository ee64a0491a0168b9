package models

import "time"

type Cart struct {
	ID        uint       `gorm:"primaryKey;autoIncrement"`
	UserID    uint       `gorm:"uniqueIndex"` // Enforces ONE cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CartItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"`
	CartID    uint    `gorm:"index;uniqueIndex:idx_cart_product"`
	ProductID uint    `gorm:"uniqueIndex:idx_cart_product"`
	Product   Product `gorm:"foreignKey:ProductID"`
	Quantity  int     `gorm:"not null"`
	AddedAt   time.Time
}

// TotalPrice is the line total at the product's current price.
func (i CartItem) TotalPrice() float64 {
	return float64(i.Quantity) * i.Product.Price
}
