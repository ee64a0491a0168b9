package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shchutski73/sport-store/cache"
)

// SetupRoutes is the single entry point that wires up the public,
// authenticated and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, products *cache.ProductCache) {
	SetupPublicRoutes(r, db, products)
	SetupUserRoutes(r, db)
	SetupAdminRoutes(r, db, products)
}
