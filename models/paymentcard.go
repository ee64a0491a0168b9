package models

import (
	"errors"
	"strings"
	"time"
)

type PaymentCard struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"`
	UserID         uint   `gorm:"index;not null"`
	CardNumber     string `gorm:"not null"` // always stored masked
	CardHolderName string `gorm:"not null"`
	ExpiryMonth    int    `gorm:"not null"`
	ExpiryYear     int    `gorm:"not null"`
	IsDefault      bool   `gorm:"default:false"`
	CreatedAt      time.Time
}

var ErrCardNumberTooShort = errors.New("card number must contain at least four digits")

// MaskCardNumber strips spaces and hyphens from a submitted card number and
// returns it masked down to the last four characters. The full PAN is never
// kept anywhere past this call.
func MaskCardNumber(raw string) (string, error) {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(raw))
	if len(cleaned) < 4 {
		return "", ErrCardNumberTooShort
	}
	return "**** **** **** " + cleaned[len(cleaned)-4:], nil
}
