package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"viralink/internal/config/configs"
	"viralink/internal/core/domain"
	"viralink/internal/core/port"
)

// Tokens issues and verifies HS256 session tokens. The session carries
// enough claims (name, email, role) for lazy profile creation without a
// users-table lookup on every request.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

// NewTokens builds a token manager from configuration.
func NewTokens(cfg configs.Auth) *Tokens {
	return &Tokens{secret: []byte(cfg.Secret), ttl: cfg.TokenTTL}
}

type sessionClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Issue signs a session token for the user and returns it with its
// expiry.
func (t *Tokens) Issue(user *domain.User) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(t.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

// Verify parses and validates a session token and returns the session it
// encodes. Any failure (bad signature, expiry, malformed claims) maps to
// domain.ErrUnauthorized.
func (t *Tokens) Verify(raw string) (port.Session, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return port.Session{}, domain.ErrUnauthorized
	}
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return port.Session{}, domain.ErrUnauthorized
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return port.Session{}, domain.ErrUnauthorized
	}
	role, ok := domain.ParseRole(claims.Role)
	if !ok {
		return port.Session{}, domain.ErrUnauthorized
	}
	return port.Session{
		UserID: userID,
		Name:   claims.Name,
		Email:  claims.Email,
		Role:   role,
	}, nil
}
