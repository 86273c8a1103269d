package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"viralink/internal/core/domain"
	"viralink/internal/core/port"
	"viralink/internal/core/port/mocks"
)

// TestEnsureReturnsExisting short-circuits when the profile is already
// stored.
func TestEnsureReturnsExisting(t *testing.T) {
	repo := mocks.NewMockProfileRepository(t)

	id := uuid.New()
	existing := &domain.Profile{ID: id, Name: "Casey", Role: domain.RoleCreator}
	repo.EXPECT().Get(mock.Anything, id).Return(existing, nil)

	svc := NewProfileUseCase(repo)

	p, err := svc.Ensure(context.Background(), port.Session{UserID: id})
	if err != nil {
		t.Fatalf("Ensure error: %v", err)
	}
	if p != existing {
		t.Fatalf("got %+v, want the stored profile", p)
	}
}

// TestEnsureCreatesLazily builds the profile from session claims on
// first use and re-reads the stored row.
func TestEnsureCreatesLazily(t *testing.T) {
	repo := mocks.NewMockProfileRepository(t)

	id := uuid.New()
	session := port.Session{UserID: id, Name: "Pat", Email: "pat@example.com", Role: domain.RolePromoter}
	stored := &domain.Profile{ID: id, Name: "Pat", Email: "pat@example.com", Role: domain.RolePromoter}

	repo.EXPECT().Get(mock.Anything, id).Return(nil, nil).Once()
	repo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.Profile")).
		Run(func(ctx context.Context, p *domain.Profile) {
			if p.ID != id || p.Role != domain.RolePromoter {
				t.Fatalf("profile built from wrong claims: %+v", p)
			}
		}).
		Return(nil)
	repo.EXPECT().Get(mock.Anything, id).Return(stored, nil).Once()

	svc := NewProfileUseCase(repo)

	p, err := svc.Ensure(context.Background(), session)
	if err != nil {
		t.Fatalf("Ensure error: %v", err)
	}
	if p != stored {
		t.Fatalf("got %+v, want the re-read profile", p)
	}
}
