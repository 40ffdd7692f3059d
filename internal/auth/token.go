package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/qs-lzh/movie-orders/internal/service"
)

// TokenManager issues and verifies signed identity tokens. It holds no
// session state; a token is valid as long as its signature checks out
// (and its expiry, when one was issued).
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a manager around the process-wide secret.
// A ttl of zero issues tokens without an expiry claim.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs an arbitrary payload into an opaque token string.
func (m *TokenManager) Issue(payload map[string]any) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	if m.ttl > 0 {
		claims["exp"] = time.Now().Add(m.ttl).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify checks signature and structure and returns the token's claims.
// Tampered, malformed, expired or foreign-signed tokens fail with
// service.ErrInvalidToken.
func (m *TokenManager) Verify(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, service.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, service.ErrInvalidToken
	}
	return claims, nil
}
