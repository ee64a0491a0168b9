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

type UpdateProductInput struct {
	Name           string                `json:"name"`
	Slug           string                `json:"slug"`
	Description    *string               `json:"description"`
	Price          *float64              `json:"price"`
	ImageURL       *string               `json:"image_url"`
	CategoryID     *uint                 `json:"category_id"`
	InStock        *bool                 `json:"in_stock"`
	Specifications *[]SpecificationInput `json:"specifications"`
}

// UpdateProduct applies a partial product update. When the payload carries a
// specifications array the prior specification set is replaced wholesale.
// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB, products *cache.ProductCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		oldSlug := product.Slug

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Price != nil && *input.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
			return
		}
		if input.CategoryID != nil {
			var category models.Category
			if err := db.First(&category, *input.CategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
		}
		if input.Slug != "" && input.Slug != product.Slug {
			var existing models.Product
			if err := db.Where("slug = ?", input.Slug).First(&existing).Error; err == nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "A product with this slug already exists"})
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
				return
			}
		}

		if input.Name != "" {
			product.Name = input.Name
		}
		if input.Slug != "" {
			product.Slug = input.Slug
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.ImageURL != nil {
			product.ImageURL = *input.ImageURL
		}
		if input.CategoryID != nil {
			product.CategoryID = input.CategoryID
		}
		if input.InStock != nil {
			product.InStock = *input.InStock
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(&product).Error; err != nil {
				return err
			}
			if input.Specifications == nil {
				return nil
			}
			// Replace the specification set wholesale, no partial merge.
			if err := tx.Where("product_id = ?", product.ID).
				Delete(&models.ProductSpecification{}).Error; err != nil {
				return err
			}
			for _, spec := range *input.Specifications {
				if spec.Name == "" || spec.Value == "" {
					continue
				}
				row := models.ProductSpecification{
					ProductID: product.ID,
					Name:      spec.Name,
					Value:     spec.Value,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		products.Invalidate(c.Request.Context(),
			oldSlug, product.Slug, strconv.Itoa(int(product.ID)))

		if err := db.Preload("Category").Preload("Specifications").Preload("Reviews.User").
			First(&product, product.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load updated product"})
			return
		}
		c.JSON(http.StatusOK, serializers.NewProductResponse(product))
	}
}
