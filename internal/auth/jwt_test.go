package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"viralink/internal/config/configs"
	"viralink/internal/core/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokens(configs.Auth{Secret: "test-secret", TokenTTL: time.Hour})

	user := &domain.User{
		ID:    uuid.New(),
		Name:  "Casey",
		Email: "casey@example.com",
		Role:  domain.RoleCreator,
	}
	signed, exp, err := tokens.Issue(user)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if time.Until(exp) < 59*time.Minute {
		t.Fatalf("expiry too soon: %v", exp)
	}

	session, err := tokens.Verify(signed)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if session.UserID != user.ID || session.Email != user.Email || session.Role != domain.RoleCreator {
		t.Fatalf("session claims wrong: %+v", session)
	}
}

func TestVerifyRejects(t *testing.T) {
	tokens := NewTokens(configs.Auth{Secret: "test-secret", TokenTTL: time.Hour})
	other := NewTokens(configs.Auth{Secret: "other-secret", TokenTTL: time.Hour})
	expired := NewTokens(configs.Auth{Secret: "test-secret", TokenTTL: -time.Minute})

	user := &domain.User{ID: uuid.New(), Role: domain.RolePromoter}

	wrongKey, _, err := other.Issue(user)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	expiredToken, _, err := expired.Issue(user)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	for name, raw := range map[string]string{
		"empty":        "",
		"garbage":      "not.a.token",
		"wrong secret": wrongKey,
		"expired":      expiredToken,
	} {
		if _, err := tokens.Verify(raw); !errors.Is(err, domain.ErrUnauthorized) {
			t.Fatalf("%s: got %v, want ErrUnauthorized", name, err)
		}
	}
}
