package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shchutski73/sport-store/models"
	"github.com/shchutski73/sport-store/serializers"
)

type AddToCartInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"omitempty,min=1"`
}

type UpdateCartItemInput struct {
	Quantity int `json:"quantity"`
}

func callerID(c *gin.Context) uint {
	return c.GetUint("user_id")
}

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cart models.Cart
		err := db.
			Preload("Items.Product.Category").
			Preload("Items.Product.Specifications").
			Where("user_id = ?", callerID(c)).
			First(&cart).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// No cart yet: same shape as an empty one.
				c.JSON(http.StatusOK, gin.H{"items": []serializers.CartItemResponse{}})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, serializers.NewCartResponse(cart))
	}
}

// AddToCart puts a product into the caller's cart, creating the cart lazily.
// A repeat add for the same product increments the existing line.
// POST /cart/add
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := callerID(c)

		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Quantity == 0 {
			input.Quantity = 1
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			}
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).
			FirstOrCreate(&cart, models.Cart{UserID: userID}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		var item models.CartItem
		err := db.Where("cart_id = ? AND product_id = ?", cart.ID, product.ID).First(&item).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{
				CartID:    cart.ID,
				ProductID: product.ID,
				Quantity:  input.Quantity,
				AddedAt:   time.Now(),
			}
			if err := db.Create(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
				return
			}
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		default:
			item.Quantity += input.Quantity
			if err := db.Save(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
				return
			}
		}

		item.Product = product
		c.JSON(http.StatusCreated, serializers.NewCartItemResponse(item))
	}
}

// findCartItem scopes an item lookup to the caller's cart so one user can
// never address another user's lines.
func findCartItem(db *gorm.DB, userID uint, itemID string) (models.CartItem, error) {
	var cart models.Cart
	if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return models.CartItem{}, err
	}
	var item models.CartItem
	err := db.Preload("Product").
		Where("id = ? AND cart_id = ?", itemID, cart.ID).
		First(&item).Error
	return item, err
}

// UpdateCartItem sets a line's quantity; zero or below removes the line.
// PUT /cart/update/:id
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := findCartItem(db, callerID(c), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}

		var input UpdateCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Quantity <= 0 {
			if err := db.Delete(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
			return
		}

		item.Quantity = input.Quantity
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, serializers.NewCartItemResponse(item))
	}
}

// DELETE /cart/remove/:id
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := findCartItem(db, callerID(c), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}

		if err := db.Delete(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
	}
}
