package utils

import (
	"errors"
	"time"

	"api/config"

	"github.com/golang-jwt/jwt/v5"
)

// TokenDuration is the lifetime of issued access tokens
const TokenDuration = time.Hour

// GenerateToken creates a signed JWT carrying the user ID as subject
func GenerateToken(userID string) (string, error) {
    claims := jwt.RegisteredClaims{
        Subject:   userID,
        IssuedAt:  jwt.NewNumericDate(time.Now()),
        ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenDuration)),
    }

    token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    return token.SignedString([]byte(config.JWTSecret))
}

// ParseToken validates a JWT and returns the user ID it was issued for
func ParseToken(tokenString string) (string, error) {
    token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, errors.New("unexpected signing method")
        }
        return []byte(config.JWTSecret), nil
    })
    if err != nil {
        return "", err
    }

    claims, ok := token.Claims.(*jwt.RegisteredClaims)
    if !ok || !token.Valid || claims.Subject == "" {
        return "", errors.New("invalid token")
    }
    return claims.Subject, nil
}
