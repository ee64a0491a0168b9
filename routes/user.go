package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/shchutski73/sport-store/controllers/cart"
	orderControllers "github.com/shchutski73/sport-store/controllers/order"
	paymentcardControllers "github.com/shchutski73/sport-store/controllers/paymentcard"
	reviewControllers "github.com/shchutski73/sport-store/controllers/review"
	userControllers "github.com/shchutski73/sport-store/controllers/user"
	"github.com/shchutski73/sport-store/middleware"
)

// SetupUserRoutes registers every endpoint that requires a valid user token.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/user", middleware.ValidateToken, userControllers.GetUser(db))

	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.GET("", cartControllers.GetCart(db))
		cartGroup.POST("/add", cartControllers.AddToCart(db))
		cartGroup.PUT("/update/:id", cartControllers.UpdateCartItem(db))
		cartGroup.DELETE("/remove/:id", cartControllers.RemoveCartItem(db))
	}

	orderGroup := r.Group("/orders")
	orderGroup.Use(middleware.ValidateToken)
	{
		orderGroup.GET("", orderControllers.GetOrders(db))
		orderGroup.POST("/create", orderControllers.CreateOrder(db))
		orderGroup.GET("/:id", orderControllers.GetOrderByID(db))
	}

	cardGroup := r.Group("/payment-cards")
	cardGroup.Use(middleware.ValidateToken)
	{
		cardGroup.GET("", paymentcardControllers.GetPaymentCards(db))
		cardGroup.POST("", paymentcardControllers.CreatePaymentCard(db))
		cardGroup.PUT("/:id", paymentcardControllers.UpdatePaymentCard(db))
		cardGroup.DELETE("/:id", paymentcardControllers.DeletePaymentCard(db))
	}

	r.POST("/products/:slug/reviews", middleware.ValidateToken, reviewControllers.CreateReview(db))

	reviewGroup := r.Group("/reviews")
	reviewGroup.Use(middleware.ValidateToken)
	{
		reviewGroup.PUT("/:id", reviewControllers.UpdateReview(db))
		reviewGroup.PATCH("/:id", reviewControllers.UpdateReview(db))
		reviewGroup.DELETE("/:id", reviewControllers.DeleteReview(db))
	}
}
