package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shchutski73/sport-store/auth"
	"github.com/shchutski73/sport-store/cache"
	contactControllers "github.com/shchutski73/sport-store/controllers/contact"
	productcontroller "github.com/shchutski73/sport-store/controllers/product"
	reviewControllers "github.com/shchutski73/sport-store/controllers/review"
)

// SetupPublicRoutes registers every endpoint reachable without a token.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB, products *cache.ProductCache) {
	r.POST("/token", auth.Token(db))
	r.POST("/register", auth.Register(db))
	r.POST("/contact", contactControllers.CreateContact(db))

	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:slug", productcontroller.GetProductBySlug(db, products))
	r.GET("/products/:slug/reviews", reviewControllers.GetProductReviews(db))
	r.GET("/categories", productcontroller.GetAllCategories(db))
}
