package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"viralink/internal/auth"
	"viralink/internal/config/configs"
	"viralink/internal/core/domain"
	"viralink/internal/core/port"
	"viralink/internal/core/port/mocks"
)

func testTokens() *auth.Tokens {
	return auth.NewTokens(configs.Auth{Secret: "test-secret", TokenTTL: time.Hour})
}

// TestRegisterIssuesToken covers signup end to end: the user is stored
// with a hashed password and a verifiable session token comes back.
func TestRegisterIssuesToken(t *testing.T) {
	users := mocks.NewMockUserRepository(t)
	tokens := testTokens()

	var stored *domain.User
	users.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.User")).
		Run(func(ctx context.Context, u *domain.User) { stored = u }).
		Return(nil)

	svc := NewAuthUseCase(users, tokens)

	result, err := svc.Register(context.Background(), port.RegisterInput{
		Name:     "Casey",
		Email:    "Casey@Example.com",
		Password: "correct horse",
		Role:     "creator",
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if stored == nil {
		t.Fatalf("no user persisted")
	}
	if stored.Email != "casey@example.com" {
		t.Fatalf("email not normalised: %q", stored.Email)
	}
	if stored.PasswordHash == "correct horse" || !auth.VerifyPassword("correct horse", stored.PasswordHash) {
		t.Fatalf("password not hashed correctly")
	}
	session, err := tokens.Verify(result.Token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if session.UserID != stored.ID || session.Role != domain.RoleCreator {
		t.Fatalf("session claims wrong: %+v", session)
	}
}

// TestRegisterValidation rejects bad signups before any persistence.
func TestRegisterValidation(t *testing.T) {
	users := mocks.NewMockUserRepository(t)
	svc := NewAuthUseCase(users, testTokens())

	_, err := svc.Register(context.Background(), port.RegisterInput{
		Name:     " ",
		Email:    "not-an-email",
		Password: "short",
		Role:     "admin",
	})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error is not a ValidationError: %v", err)
	}
	if len(verr.Fields) != 4 {
		t.Fatalf("got %d field errors, want 4: %+v", len(verr.Fields), verr.Fields)
	}
}

// TestLoginWrongPassword keeps unknown email and bad password
// indistinguishable.
func TestLoginWrongPassword(t *testing.T) {
	users := mocks.NewMockUserRepository(t)

	hash, err := auth.HashPassword("the real password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	users.EXPECT().
		GetByEmail(mock.Anything, "casey@example.com").
		Return(&domain.User{Email: "casey@example.com", PasswordHash: hash}, nil).Once()
	users.EXPECT().
		GetByEmail(mock.Anything, "nobody@example.com").
		Return(nil, nil).Once()

	svc := NewAuthUseCase(users, testTokens())

	_, err = svc.Login(context.Background(), port.LoginInput{Email: "casey@example.com", Password: "guess"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("wrong password: got %v, want ErrUnauthorized", err)
	}
	_, err2 := svc.Login(context.Background(), port.LoginInput{Email: "nobody@example.com", Password: "guess"})
	if !errors.Is(err2, domain.ErrUnauthorized) {
		t.Fatalf("unknown email: got %v, want ErrUnauthorized", err2)
	}
	if err.Error() != err2.Error() {
		t.Fatalf("failure modes distinguishable: %q vs %q", err, err2)
	}
}

// TestLoginSuccess returns a token for valid credentials.
func TestLoginSuccess(t *testing.T) {
	users := mocks.NewMockUserRepository(t)
	tokens := testTokens()

	hash, err := auth.HashPassword("the real password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	user := &domain.User{Email: "casey@example.com", PasswordHash: hash, Role: domain.RolePromoter}
	users.EXPECT().GetByEmail(mock.Anything, "casey@example.com").Return(user, nil)

	svc := NewAuthUseCase(users, tokens)

	result, err := svc.Login(context.Background(), port.LoginInput{
		Email:    "  Casey@example.com ",
		Password: "the real password",
	})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if _, err = tokens.Verify(result.Token); err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
}
