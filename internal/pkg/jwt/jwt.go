package jwt

import (
	"encoding/base64"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// Claims represents the session token claims
type Claims struct {
	UserID any    `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Service issues and validates signed session tokens.
type Service struct {
	key    []byte
	expiry time.Duration
}

// New creates a token service from the configured secret. The secret may be a
// base64 encoded string; if it decodes validly the decoded bytes are used as
// key material, otherwise the raw bytes of the secret are used.
func New(secret string, expiry time.Duration) *Service {
	key, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		key = []byte(secret)
	}
	return &Service{key: key, expiry: expiry}
}

// Issue generates a signed token carrying the user id and role for the given
// subject (typically the user's email)
func (s *Service) Issue(userID any, role, subject string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "jatri-ovijog",
			Subject:   subject,
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

// Validate parses a token, verifies its signature and expiry, and returns
// its claims
func (s *Service) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.key, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrTokenInvalid
}
