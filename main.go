package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/shchutski73/sport-store/cache"
	"github.com/shchutski73/sport-store/models"
	"github.com/shchutski73/sport-store/routes"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

func main() {
	logger.Info().Msg("starting application")

	// Load environment variables
	_ = godotenv.Load()

	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.ProductSpecification{},
		&models.Cart{},
		&models.CartItem{},
		&models.PaymentCard{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
		&models.Contact{},
	); err != nil {
		logger.Fatal().Err(err).Msg("auto-migrate failed")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Product detail cache is optional; without REDIS_ADDR every lookup goes
	// straight to the store.
	var products *cache.ProductCache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		products = cache.NewProductCache(redis.NewClient(&redis.Options{Addr: addr}))
		logger.Info().Str("addr", addr).Msg("product cache enabled")
	}

	routes.SetupRoutes(r, db, products)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info().Str("port", port).Msg("server listening")
	if err := r.Run(":" + port); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			logger.Fatal().Err(err).Msg("db connection failed")
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Fatal().Err(err).Msg("db connection failed")
	}
	return db
}
