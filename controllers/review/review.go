package reviewControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shchutski73/sport-store/models"
	"github.com/shchutski73/sport-store/serializers"
)

type CreateReviewInput struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Text   string `json:"text"`
}

type UpdateReviewInput struct {
	Rating *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Text   *string `json:"text"`
}

// hasPurchased reports whether the user has an order line for the product
// inside any non-cancelled order.
func hasPurchased(db *gorm.DB, userID, productID uint) (bool, error) {
	var count int64
	err := db.Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ? AND orders.status <> ? AND order_items.product_id = ?",
			userID, models.OrderStatusCancelled, productID).
		Count(&count).Error
	return count > 0, err
}

// GET /products/:slug/reviews
func GetProductReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("slug")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var reviews []models.Review
		if err := db.Preload("User").
			Where("product_id = ?", product.ID).
			Order("created_at DESC").
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}

		resp := make([]serializers.ReviewResponse, 0, len(reviews))
		for _, review := range reviews {
			resp = append(resp, serializers.NewReviewResponse(review))
		}
		c.JSON(http.StatusOK, resp)
	}
}

// CreateReview creates a review for a purchased product. The caller must
// have the product in a non-cancelled order and must not have reviewed it
// before.
// POST /products/:slug/reviews
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("slug")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		purchased, err := hasPurchased(db, userID, product.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify purchase"})
			return
		}
		if !purchased {
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only review products you have ordered"})
			return
		}

		var existing models.Review
		err = db.Where("user_id = ? AND product_id = ?", userID, product.ID).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You have already reviewed this product"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing reviews"})
			return
		}

		var input CreateReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		review := models.Review{
			ProductID: product.ID,
			UserID:    userID,
			Rating:    input.Rating,
			Text:      input.Text,
		}
		if err := db.Create(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
			return
		}

		if err := db.Preload("User").First(&review, review.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load review"})
			return
		}
		c.JSON(http.StatusCreated, serializers.NewReviewResponse(review))
	}
}

// findOwnReview resolves a review and enforces that the caller authored it.
// A foreign review yields 403, a missing one 404.
func findOwnReview(db *gorm.DB, c *gin.Context) (models.Review, bool) {
	var review models.Review
	if err := db.First(&review, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return review, false
	}
	if review.UserID != c.GetUint("user_id") {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only modify your own reviews"})
		return review, false
	}
	return review, true
}

// UpdateReview edits the caller's own review. PATCH applies only the fields
// present; PUT requires the full payload.
// PUT/PATCH /reviews/:id
func UpdateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		review, ok := findOwnReview(db, c)
		if !ok {
			return
		}

		partial := c.Request.Method == http.MethodPatch

		var input UpdateReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if !partial && input.Rating == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Rating is required"})
			return
		}

		if input.Rating != nil {
			review.Rating = *input.Rating
		}
		if input.Text != nil {
			review.Text = *input.Text
		}
		if err := db.Save(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
			return
		}

		if err := db.Preload("User").First(&review, review.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load review"})
			return
		}
		c.JSON(http.StatusOK, serializers.NewReviewResponse(review))
	}
}

// DELETE /reviews/:id
func DeleteReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		review, ok := findOwnReview(db, c)
		if !ok {
			return
		}

		if err := db.Delete(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
			return
		}

		c.Status(http.StatusNoContent)
	}
}
