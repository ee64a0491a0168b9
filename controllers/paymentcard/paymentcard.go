package paymentcardControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shchutski73/sport-store/models"
	"github.com/shchutski73/sport-store/serializers"
)

type CreatePaymentCardInput struct {
	CardNumber     string `json:"card_number" binding:"required"`
	CardHolderName string `json:"card_holder_name" binding:"required"`
	ExpiryMonth    int    `json:"expiry_month" binding:"required,min=1,max=12"`
	ExpiryYear     int    `json:"expiry_year" binding:"required"`
	IsDefault      bool   `json:"is_default"`
}

type UpdatePaymentCardInput struct {
	IsDefault bool `json:"is_default"`
}

// GET /payment-cards
func GetPaymentCards(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cards []models.PaymentCard
		if err := db.Where("user_id = ?", c.GetUint("user_id")).Find(&cards).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cards"})
			return
		}

		resp := make([]serializers.PaymentCardResponse, 0, len(cards))
		for _, card := range cards {
			resp = append(resp, serializers.NewPaymentCardResponse(card))
		}
		c.JSON(http.StatusOK, resp)
	}
}

// CreatePaymentCard stores a card with the number already masked; the raw PAN
// never reaches the database. A card created as default clears the flag on
// the caller's other cards in the same transaction.
// POST /payment-cards
func CreatePaymentCard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var input CreatePaymentCardInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		masked, err := models.MaskCardNumber(input.CardNumber)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card number format"})
			return
		}

		card := models.PaymentCard{
			UserID:         userID,
			CardNumber:     masked,
			CardHolderName: input.CardHolderName,
			ExpiryMonth:    input.ExpiryMonth,
			ExpiryYear:     input.ExpiryYear,
			IsDefault:      input.IsDefault,
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if input.IsDefault {
				if err := tx.Model(&models.PaymentCard{}).
					Where("user_id = ? AND is_default = ?", userID, true).
					Update("is_default", false).Error; err != nil {
					return err
				}
			}
			return tx.Create(&card).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save card"})
			return
		}

		c.JSON(http.StatusCreated, serializers.NewPaymentCardResponse(card))
	}
}

func findOwnCard(db *gorm.DB, userID uint, cardID string) (models.PaymentCard, error) {
	var card models.PaymentCard
	err := db.Where("id = ? AND user_id = ?", cardID, userID).First(&card).Error
	return card, err
}

// UpdatePaymentCard only supports promoting a card to default; the swap
// clears every other default flag for the user atomically.
// PUT /payment-cards/:id
func UpdatePaymentCard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		card, err := findOwnCard(db, userID, c.Param("id"))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch card"})
			}
			return
		}

		var input UpdatePaymentCardInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if !input.IsDefault {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only the default card flag can be changed"})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.PaymentCard{}).
				Where("user_id = ? AND is_default = ?", userID, true).
				Update("is_default", false).Error; err != nil {
				return err
			}
			return tx.Model(&card).Update("is_default", true).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update card"})
			return
		}

		card.IsDefault = true
		c.JSON(http.StatusOK, serializers.NewPaymentCardResponse(card))
	}
}

// DELETE /payment-cards/:id
func DeletePaymentCard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		card, err := findOwnCard(db, c.GetUint("user_id"), c.Param("id"))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch card"})
			}
			return
		}

		if err := db.Delete(&card).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete card"})
			return
		}

		c.Status(http.StatusNoContent)
	}
}
