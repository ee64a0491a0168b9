package auth

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/shchutski73/sport-store/models"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "auth").Logger()

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}
		if input.Username == "" || input.Email == "" || input.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username, email and password are required"})
			return
		}

		var existing models.User
		if err := db.Where("username = ?", input.Username).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error().Err(err).Msg("registration lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed, please try again"})
			return
		}
		if err := db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error().Err(err).Msg("registration lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed, please try again"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error().Err(err).Msg("password hashing failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed, please try again"})
			return
		}

		user := models.User{
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: string(hash),
		}
		if err := db.Create(&user).Error; err != nil {
			logger.Error().Err(err).Str("username", input.Username).Msg("failed to create user")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed, please try again"})
			return
		}

		access, refresh, err := IssueTokenPair(user)
		if err != nil {
			logger.Error().Err(err).Msg("token issuance failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed, please try again"})
			return
		}

		logger.Info().Str("username", user.Username).Msg("user registered")
		c.JSON(http.StatusCreated, gin.H{
			"message": "User created successfully",
			"access":  access,
			"refresh": refresh,
		})
	}
}

// POST /token
func Token(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input TokenInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
			return
		}

		var user models.User
		if err := db.Where("username = ?", input.Username).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}

		access, refresh, err := IssueTokenPair(user)
		if err != nil {
			logger.Error().Err(err).Msg("token issuance failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue tokens"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"access": access, "refresh": refresh})
	}
}
