package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shchutski73/sport-store/cache"
	contactControllers "github.com/shchutski73/sport-store/controllers/contact"
	orderControllers "github.com/shchutski73/sport-store/controllers/order"
	productcontroller "github.com/shchutski73/sport-store/controllers/product"
	"github.com/shchutski73/sport-store/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires a staff token.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, products *cache.ProductCache) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productcontroller.GetAdminProducts(db))
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db, products))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db, products))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.GET("", productcontroller.GetAllCategories(db))
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
		}

		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrders(db))
			orderAdmin.GET("/feed", orderControllers.OrderFeedHandler)
			orderAdmin.PUT("/:id/status", orderControllers.UpdateOrderStatus(db))
		}

		adminGroup.GET("/contacts", contactControllers.GetContacts(db))
	}
}
