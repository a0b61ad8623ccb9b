package helper

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"belajarku_backend/internals/configs"
)

const tokenLifetime = 7 * 24 * time.Hour

// GenerateToken menerbitkan JWT HS256 berisi identitas user.
func GenerateToken(userID uuid.UUID, username, email, role string) (string, error) {
	claims := jwt.MapClaims{
		"id":       userID.String(),
		"username": username,
		"email":    email,
		"role":     role,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(tokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
