package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "divelog"

// CustomClaims представляет JWT claims сессии; ID (jti) совпадает с id сессии
type CustomClaims struct {
	User string `json:"user"`
	jwt.RegisteredClaims
}

// JWTConfig содержит конфигурацию для JWT
type JWTConfig struct {
	Secret     []byte
	SessionTTL time.Duration
}

// GenerateSessionToken создает JWT для сессии sessionID
func GenerateSessionToken(cfg JWTConfig, sessionID, user string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(cfg.SessionTTL)

	claims := CustomClaims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   user,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(cfg.Secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// ValidateSessionToken валидирует и парсит JWT сессии
func ValidateSessionToken(cfg JWTConfig, tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (any, error) {
		return cfg.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.ID == "" || claims.User == "" {
		return nil, errors.New("token has no session")
	}

	return claims, nil
}
