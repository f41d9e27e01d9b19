package utils

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GenerateAccessToken signs an HS256 JWT for the given user. Expiry is
// controlled by ACCESS_TOKEN_MINUTES; when unset the token does not expire.
func GenerateAccessToken(userID uuid.UUID, login string) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT secret not set")
	}

	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"login":   login,
	}
	if minutes := accessTokenMinutes(); minutes > 0 {
		claims["exp"] = time.Now().Add(time.Duration(minutes) * time.Minute).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func accessTokenMinutes() int {
	env := os.Getenv("ACCESS_TOKEN_MINUTES")
	if env == "" {
		return 0
	}
	if iv, err := strconv.Atoi(env); err == nil && iv > 0 {
		return iv
	}
	return 0
}
