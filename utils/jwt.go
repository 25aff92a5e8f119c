package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWT signs an HS256 token carrying the caller's identity and role.
// Tokens expire after 3 hours.
func GenerateJWT(id uint, email, role string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    id,
		"email": email,
		"role":  role,
		"exp":   time.Now().Add(time.Hour * 3).Unix(),
	})

	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
