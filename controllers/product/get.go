package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shchutski73/sport-store/cache"
	"github.com/shchutski73/sport-store/models"
	"github.com/shchutski73/sport-store/serializers"
)

// findVisibleProduct resolves a slug-or-id path parameter against in-stock
// products. Slug lookup wins; a bare integer falls back to the primary key.
func findVisibleProduct(db *gorm.DB, slugOrID string) (models.Product, error) {
	visible := func() *gorm.DB {
		return db.
			Preload("Category").
			Preload("Specifications").
			Preload("Reviews.User").
			Where("in_stock = ?", true)
	}

	var product models.Product
	err := visible().Where("slug = ?", slugOrID).First(&product).Error
	if err == nil {
		return product, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return product, err
	}

	id, convErr := strconv.Atoi(slugOrID)
	if convErr != nil {
		return product, gorm.ErrRecordNotFound
	}
	err = visible().Where("id = ?", id).First(&product).Error
	return product, err
}

// GetProductBySlug returns one in-stock product by slug, falling back to a
// numeric id in the same path parameter.
// GET /products/:slug
func GetProductBySlug(db *gorm.DB, products *cache.ProductCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		slugOrID := c.Param("slug")

		if resp, ok := products.Get(c.Request.Context(), slugOrID); ok {
			c.JSON(http.StatusOK, resp)
			return
		}

		product, err := findVisibleProduct(db, slugOrID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		resp := serializers.NewProductResponse(product)
		products.Set(c.Request.Context(), slugOrID, resp)
		c.JSON(http.StatusOK, resp)
	}
}
