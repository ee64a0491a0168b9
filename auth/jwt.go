package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shchutski73/sport-store/models"
)

const (
	accessTokenTTL  = 30 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

func signToken(user models.User, tokenType string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"is_staff": user.IsStaff,
		"type":     tokenType,
		"exp":      time.Now().Add(ttl).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// IssueTokenPair returns a short-lived access token and a refresh token for
// the given user.
func IssueTokenPair(user models.User) (access string, refresh string, err error) {
	if access, err = signToken(user, "access", accessTokenTTL); err != nil {
		return "", "", err
	}
	if refresh, err = signToken(user, "refresh", refreshTokenTTL); err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
