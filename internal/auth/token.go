package auth

import (
	"errors"
	"time"

	"trackify_backend/internal/config"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Claims embeds the user identity in the bearer token. Organization
// rides along so role scoping does not need a DB lookup per request.
type Claims struct {
	UserID       string `json:"user_id"`
	Role         string `json:"role"`
	Organization string `json:"organization,omitempty"`
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid token")

// GenerateToken signs a JWT for the user. Lifetime comes from
// config (JWT_EXPIRE hours, default 30 days).
func GenerateToken(userID, role, organization string) (string, error) {
	cfg := config.GetConfig()

	ttl := time.Duration(cfg.JWT.TTLHours) * time.Hour
	now := time.Now()

	claims := &Claims{
		UserID:       userID,
		Role:         role,
		Organization: organization,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "trackify",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ParseToken validates the signature and expiry and returns the claims.
func ParseToken(tokenStr string) (*Claims, error) {
	cfg := config.GetConfig()

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
