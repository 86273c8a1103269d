package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"viralink/internal/auth"
	"viralink/internal/core/domain"
	"viralink/internal/core/port"
)

const minPasswordLen = 8

// AuthUseCase registers identities and issues session tokens. It
// implements port.AuthService.
type AuthUseCase struct {
	users  port.UserRepository
	tokens *auth.Tokens
}

// NewAuthUseCase creates a new usecase with the provided repository and
// token manager.
func NewAuthUseCase(users port.UserRepository, tokens *auth.Tokens) *AuthUseCase {
	return &AuthUseCase{users: users, tokens: tokens}
}

// Register creates an identity record and returns a session token. The
// role chosen at signup is permanent.
func (u *AuthUseCase) Register(ctx context.Context, in port.RegisterInput) (*port.AuthResult, error) {
	var fields []domain.FieldError
	if strings.TrimSpace(in.Name) == "" {
		fields = append(fields, domain.FieldError{Field: "name", Message: "name is required"})
	}
	if !strings.Contains(in.Email, "@") {
		fields = append(fields, domain.FieldError{Field: "email", Message: "email must be a valid address"})
	}
	if len(in.Password) < minPasswordLen {
		fields = append(fields, domain.FieldError{Field: "password", Message: "password must be at least 8 characters"})
	}
	role, ok := domain.ParseRole(in.Role)
	if !ok {
		fields = append(fields, domain.FieldError{Field: "role", Message: "role must be creator or promoter"})
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &domain.User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if err = u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return u.result(user)
}

// Login verifies credentials and returns a session token. Unknown email
// and wrong password are indistinguishable to the caller.
func (u *AuthUseCase) Login(ctx context.Context, in port.LoginInput) (*port.AuthResult, error) {
	user, err := u.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.VerifyPassword(in.Password, user.PasswordHash) {
		return nil, fmt.Errorf("invalid email or password: %w", domain.ErrUnauthorized)
	}
	return u.result(user)
}

func (u *AuthUseCase) result(user *domain.User) (*port.AuthResult, error) {
	token, exp, err := u.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &port.AuthResult{
		Token:     token,
		ExpiresAt: exp,
		User: domain.Profile{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}
