package orderControllers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/shchutski73/sport-store/models"
	"github.com/shchutski73/sport-store/serializers"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "orders").Logger()

type CreateOrderInput struct {
	PaymentMethod string `json:"payment_method"`
	PaymentCardID *uint  `json:"payment_card_id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	PostalCode    string `json:"postal_code"`
	Notes         string `json:"notes"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// CreateOrder turns the caller's cart into an immutable order. Validation
// (cart not empty, payment method known, card owned by the caller) happens
// before any write; order creation, item snapshotting, total computation and
// cart clearing run inside one transaction.
// POST /orders/create
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var input CreateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var cart models.Cart
		err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && len(cart.Items) == 0) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		if input.PaymentMethod == "" {
			input.PaymentMethod = string(models.PaymentMethodCash)
		}
		method, err := models.ParsePaymentMethod(input.PaymentMethod)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment method. Available: cash, card"})
			return
		}

		var cardID *uint
		if method == models.PaymentMethodCard {
			if input.PaymentCardID == nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "A payment card must be selected for card payments"})
				return
			}
			var card models.PaymentCard
			if err := db.Where("id = ? AND user_id = ?", *input.PaymentCardID, userID).
				First(&card).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
				return
			}
			cardID = &card.ID
		}

		order := models.Order{
			OrderRef:      generateOrderRef(),
			UserID:        userID,
			Status:        models.OrderStatusPending,
			PaymentMethod: method,
			PaymentCardID: cardID,
			FirstName:     input.FirstName,
			LastName:      input.LastName,
			Email:         input.Email,
			Phone:         input.Phone,
			Address:       input.Address,
			City:          input.City,
			PostalCode:    input.PostalCode,
			Notes:         input.Notes,
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&order).Error; err != nil {
				return err
			}

			var total float64
			for _, item := range cart.Items {
				// Snapshot the product's price as it is right now, not a
				// cart-stored value.
				var product models.Product
				if err := tx.First(&product, item.ProductID).Error; err != nil {
					return err
				}

				orderItem := models.OrderItem{
					OrderID:   order.ID,
					ProductID: product.ID,
					Quantity:  item.Quantity,
					Price:     product.Price,
				}
				if err := tx.Create(&orderItem).Error; err != nil {
					return err
				}
				total += orderItem.TotalPrice()
			}

			if err := tx.Model(&order).Update("total_price", total).Error; err != nil {
				return err
			}

			return tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
		})
		if err != nil {
			logger.Error().Err(err).Uint("user_id", userID).Msg("checkout transaction failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		if err := db.
			Preload("Items.Product.Category").
			Preload("PaymentCard").
			First(&order, order.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load created order"})
			return
		}

		resp := serializers.NewOrderResponse(order)
		logger.Info().Str("order_ref", order.OrderRef).Uint("user_id", userID).
			Float64("total", order.TotalPrice).Msg("order created")
		broadcastNewOrder(resp)

		c.JSON(http.StatusCreated, resp)
	}
}

// GET /orders
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items.Product.Category").
			Preload("PaymentCard").
			Where("user_id = ?", c.GetUint("user_id")).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, serializers.NewOrderListResponse(orders))
	}
}

// GetOrderByID returns one of the caller's own orders. Another user's order
// id yields the same not-found as a missing one.
// GET /orders/:id
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		err := db.
			Preload("Items.Product.Category").
			Preload("PaymentCard").
			Where("id = ? AND user_id = ?", c.Param("id"), c.GetUint("user_id")).
			First(&order).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			}
			return
		}

		c.JSON(http.StatusOK, serializers.NewOrderResponse(order))
	}
}

// GET /admin/orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items.Product.Category").
			Preload("PaymentCard").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, serializers.NewOrderListResponse(orders))
	}
}

// UpdateOrderStatus moves an order through the status enum. The rest of an
// order is immutable once created.
// PUT /admin/orders/:id/status
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateOrderStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		status, err := models.ParseOrderStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}

		var order models.Order
		if err := db.First(&order, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		if err := db.Model(&order).Update("status", status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}

		if err := db.
			Preload("Items.Product.Category").
			Preload("PaymentCard").
			First(&order, order.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
			return
		}
		c.JSON(http.StatusOK, serializers.NewOrderResponse(order))
	}
}
