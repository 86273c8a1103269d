package usecase

import (
	"context"
	"fmt"
	"time"

	"viralink/internal/core/domain"
	"viralink/internal/core/port"
)

// ProfileUseCase resolves authenticated sessions to application profiles,
// creating the profile lazily on first use. It implements
// port.ProfileService.
type ProfileUseCase struct {
	profiles port.ProfileRepository
}

// NewProfileUseCase creates a new usecase with the provided repository.
func NewProfileUseCase(profiles port.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{profiles: profiles}
}

// Ensure returns the caller's profile. When none exists yet it creates
// one from the session claims; a concurrent first request is tolerated by
// the repository's conflict-ignoring insert, after which the stored row
// is re-read so both callers observe the same profile.
func (u *ProfileUseCase) Ensure(ctx context.Context, s port.Session) (*domain.Profile, error) {
	p, err := u.profiles.Get(ctx, s.UserID)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	fresh := &domain.Profile{
		ID:        s.UserID,
		Name:      s.Name,
		Email:     s.Email,
		Role:      s.Role,
		CreatedAt: time.Now().UTC(),
	}
	if err = u.profiles.Create(ctx, fresh); err != nil {
		return nil, err
	}
	p, err = u.profiles.Get(ctx, s.UserID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("profile vanished after create: %w", domain.ErrNotFound)
	}
	return p, nil
}
