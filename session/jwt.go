package session

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTStore issues stateless HS256 tokens. Revoke is a no-op kept for
// interface parity; revocation needs the Redis-backed store.
type JWTStore struct {
	secret []byte
	ttl    time.Duration
}

type claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

func NewJWTStore(secret string, ttl time.Duration) *JWTStore {
	return &JWTStore{secret: []byte(secret), ttl: ttl}
}

func (s *JWTStore) Issue(_ context.Context, userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "chat-core",
		},
	})
	return token.SignedString(s.secret)
}

func (s *JWTStore) Resolve(_ context.Context, tokenString string) (string, bool, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return "", false, nil
	}
	if c, ok := token.Claims.(*claims); ok && token.Valid {
		return c.UserID, true, nil
	}
	return "", false, nil
}

func (s *JWTStore) Revoke(context.Context, string) error {
	return nil
}
