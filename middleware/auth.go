package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ValidateToken checks the bearer token and stores the caller's identity in
// the request context.
func ValidateToken(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must use the Bearer scheme"})
		c.Abort()
		return
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return
	}
	if tokenType, _ := claims["type"].(string); tokenType != "access" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
		c.Abort()
		return
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return
	}

	isStaff, _ := claims["is_staff"].(bool)
	c.Set("user_id", uint(userID))
	c.Set("is_staff", isStaff)

	c.Next()
}

// RequireAdmin allows only staff accounts past. Must run after ValidateToken.
func RequireAdmin(c *gin.Context) {
	if !c.GetBool("is_staff") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin privileges required"})
		c.Abort()
		return
	}
	c.Next()
}
