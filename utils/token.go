package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"mkr-foods/config"
)

const guestTokenTTL = 24 * time.Hour

// GenerateGuestID returns a random identifier for an anonymous visitor.
func GenerateGuestID() string {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "guest_fallback"
	}
	return "guest_" + hex.EncodeToString(bytes)
}

// IssueGuestToken signs a short-lived HS256 token carrying the guest id,
// so anonymous visitors can hold a cart before signing in.
func IssueGuestToken(guestID string) (string, time.Time, error) {
	expiresAt := time.Now().Add(guestTokenTTL)

	claims := jwt.MapClaims{
		"user_id": guestID,
		"role":    "guest",
		"exp":     expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.AppConfig.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ValidateGuestToken checks a guest token and returns the guest id.
func ValidateGuestToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	if role, _ := claims["role"].(string); role != "guest" {
		return "", errors.New("not a guest token")
	}
	guestID, _ := claims["user_id"].(string)
	if guestID == "" {
		return "", errors.New("missing user id in token")
	}
	return guestID, nil
}
