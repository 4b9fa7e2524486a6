package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"lumira_back_end/internal/models"
)

// GenerateJWT émet le jeton de session d'un administrateur (24h).
func GenerateJWT(user models.AdminUser) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super_secret"
	}

	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
