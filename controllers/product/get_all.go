package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shchutski73/sport-store/models"
	"github.com/shchutski73/sport-store/serializers"
)

// GetProducts returns the public catalog: in-stock products, newest first,
// optionally narrowed to one category by slug.
// GET /products?category=<slug>
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.
			Preload("Category").
			Preload("Specifications").
			Preload("Reviews.User").
			Where("in_stock = ?", true)

		if categorySlug := c.Query("category"); categorySlug != "" {
			query = query.
				Joins("JOIN categories ON categories.id = products.category_id").
				Where("categories.slug = ?", categorySlug)
		}

		var products []models.Product
		if err := query.Order("products.created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, serializers.NewProductListResponse(products))
	}
}

// GetAllCategories returns every category ordered by name.
// GET /categories
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("name").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		resp := make([]serializers.CategoryResponse, 0, len(categories))
		for _, category := range categories {
			resp = append(resp, serializers.NewCategoryResponse(category))
		}
		c.JSON(http.StatusOK, resp)
	}
}

// GetAdminProducts returns the full catalog including out-of-stock rows.
// GET /admin/products
func GetAdminProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.
			Preload("Category").
			Preload("Specifications").
			Preload("Reviews.User").
			Order("created_at DESC").
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, serializers.NewProductListResponse(products))
	}
}
