package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shchutski73/sport-store/cache"
	"github.com/shchutski73/sport-store/models"
)

var errProductOrdered = errors.New("product appears in order history")

// DeleteProduct removes a product together with its specifications, reviews
// and any cart lines that still reference it. A product that appears in
// order history cannot be deleted; order items keep their snapshot.
// DELETE /admin/products/:id
func DeleteProduct(db *gorm.DB, products *cache.ProductCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var ordered int64
			if err := tx.Model(&models.OrderItem{}).
				Where("product_id = ?", product.ID).
				Count(&ordered).Error; err != nil {
				return err
			}
			if ordered > 0 {
				return errProductOrdered
			}

			if err := tx.Where("product_id = ?", product.ID).
				Delete(&models.ProductSpecification{}).Error; err != nil {
				return err
			}
			if err := tx.Where("product_id = ?", product.ID).
				Delete(&models.Review{}).Error; err != nil {
				return err
			}
			if err := tx.Where("product_id = ?", product.ID).
				Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&product).Error
		})
		if errors.Is(err, errProductOrdered) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product appears in order history and cannot be deleted; mark it out of stock instead"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		products.Invalidate(c.Request.Context(),
			product.Slug, strconv.Itoa(int(product.ID)))

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
