package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"fixify/config"

	"github.com/golang-jwt/jwt"
)

// End-user auth is delegated to Firebase; these tokens only guard the admin
// surface.

func adminSecret() []byte {
	return []byte(config.AppConfig.AdminJWTSecret)
}

// GenerateAdminToken creates a signed JWT for an admin subject.
func GenerateAdminToken(subject string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   subject,
		"scope": "admin",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(adminSecret())
}

// ValidateAdminToken parses a token string and verifies the admin scope.
func ValidateAdminToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return adminSecret(), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid admin token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid admin token claims")
	}
	if scope, _ := claims["scope"].(string); scope != "admin" {
		return "", errors.New("token missing admin scope")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", errors.New("token missing subject")
	}
	return sub, nil
}

// HashToken computes a SHA-256 hash of a token string, used as a cache key
// so raw tokens never land in Redis.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
