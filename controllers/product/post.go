package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shchutski73/sport-store/models"
	"github.com/shchutski73/sport-store/serializers"
)

type SpecificationInput struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type CreateProductInput struct {
	Name           string               `json:"name" binding:"required"`
	Slug           string               `json:"slug"`
	Description    string               `json:"description"`
	Price          float64              `json:"price" binding:"min=0"`
	ImageURL       string               `json:"image_url"`
	CategoryID     *uint                `json:"category_id"`
	InStock        *bool                `json:"in_stock"`
	Specifications []SpecificationInput `json:"specifications"`
}

// CreateProduct creates a product together with its specification set.
// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		slug := input.Slug
		if slug == "" {
			slug = Slugify(input.Name)
		}
		if slug == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A slug could not be derived from the product name"})
			return
		}

		var existing models.Product
		if err := db.Where("slug = ?", slug).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A product with this slug already exists"})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		if input.CategoryID != nil {
			var category models.Category
			if err := db.First(&category, *input.CategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
		}

		inStock := true
		if input.InStock != nil {
			inStock = *input.InStock
		}

		product := models.Product{
			Name:        input.Name,
			Slug:        slug,
			Description: input.Description,
			Price:       input.Price,
			ImageURL:    input.ImageURL,
			CategoryID:  input.CategoryID,
			InStock:     inStock,
		}
		for _, spec := range input.Specifications {
			if spec.Name == "" || spec.Value == "" {
				continue
			}
			product.Specifications = append(product.Specifications, models.ProductSpecification{
				Name:  spec.Name,
				Value: spec.Value,
			})
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		if err := db.Preload("Category").Preload("Specifications").First(&product, product.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load created product"})
			return
		}
		c.JSON(http.StatusCreated, serializers.NewProductResponse(product))
	}
}

type CreateCategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// CreateCategory creates a catalog category.
// POST /admin/categories
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateCategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		slug := input.Slug
		if slug == "" {
			slug = Slugify(input.Name)
		}

		var existing models.Category
		if err := db.Where("slug = ?", slug).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A category with this slug already exists"})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}

		category := models.Category{
			Name:        input.Name,
			Slug:        slug,
			Description: input.Description,
		}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}

		c.JSON(http.StatusCreated, serializers.NewCategoryResponse(category))
	}
}
