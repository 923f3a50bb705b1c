// Package auth is the boundary to the external identity provider. The
// provider issues HMAC-signed JWTs; this package only verifies them and
// extracts an Identity — session management lives with the provider.
package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Identity is a resolved, session-backed user reference. A nil *Identity
// means "unauthenticated" everywhere in this codebase.
type Identity struct {
	UserID string
	Email  string
}

// ParseToken verifies an HMAC-signed bearer token and extracts the
// identity from its claims. Expiry is enforced by the jwt library.
func ParseToken(secret, tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, ErrInvalidToken
	}
	email, _ := claims["email"].(string)

	return &Identity{UserID: sub, Email: email}, nil
}
