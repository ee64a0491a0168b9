package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string
type PaymentMethod string

const (
	OrderStatusPending    OrderStatus = "pending"    // Order placed, awaiting confirmation
	OrderStatusProcessing OrderStatus = "processing" // Confirmed, being prepared
	OrderStatusShipped    OrderStatus = "shipped"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // Customer received the order
	OrderStatusCancelled  OrderStatus = "cancelled"  // Cancelled before shipping

	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodCard PaymentMethod = "card"
)

var (
	ErrInvalidOrderStatus   = errors.New("invalid order status")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// ParseOrderStatus maps a request string onto the closed status enum.
func ParseOrderStatus(status string) (OrderStatus, error) {
	switch OrderStatus(strings.ToLower(status)) {
	case OrderStatusPending:
		return OrderStatusPending, nil
	case OrderStatusProcessing:
		return OrderStatusProcessing, nil
	case OrderStatusShipped:
		return OrderStatusShipped, nil
	case OrderStatusDelivered:
		return OrderStatusDelivered, nil
	case OrderStatusCancelled:
		return OrderStatusCancelled, nil
	default:
		return "", ErrInvalidOrderStatus
	}
}

// ParsePaymentMethod maps a request string onto the payment method enum.
func ParsePaymentMethod(method string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToLower(method)) {
	case PaymentMethodCash:
		return PaymentMethodCash, nil
	case PaymentMethodCard:
		return PaymentMethodCard, nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

type Order struct {
	ID            uint          `gorm:"primaryKey;autoIncrement"`
	OrderRef      string        `gorm:"uniqueIndex;not null"`
	UserID        uint          `gorm:"index;not null"`
	User          User          `gorm:"foreignKey:UserID"`
	Status        OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'"`
	PaymentMethod PaymentMethod `gorm:"type:VARCHAR(20);not null"`
	PaymentCardID *uint
	PaymentCard   *PaymentCard `gorm:"foreignKey:PaymentCardID;constraint:OnDelete:SET NULL"`
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	Address       string
	City          string
	PostalCode    string
	Notes         string
	TotalPrice    float64
	Items         []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"`
	OrderID   uint    `gorm:"index"`
	ProductID uint
	Product   Product `gorm:"foreignKey:ProductID"`
	Quantity  int     `gorm:"not null"`
	Price     float64 `gorm:"not null"` // product price frozen at checkout
}

// TotalPrice is quantity times the frozen unit price.
func (i OrderItem) TotalPrice() float64 {
	return float64(i.Quantity) * i.Price
}
