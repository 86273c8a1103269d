package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"viralink/internal/core/domain"
)

// ProfileRepository implements port.ProfileRepository using pgxpool.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository returns a new repository instance.
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

// Get returns the profile with the given id, or nil when absent.
func (r *ProfileRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	var p domain.Profile
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, role, created_at FROM profiles WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Email, &p.Role, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a profile. ON CONFLICT DO NOTHING keeps lazy creation
// safe when two first requests race.
func (r *ProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO profiles (id, name, email, role, created_at)
         VALUES ($1, $2, $3, $4, $5)
         ON CONFLICT (id) DO NOTHING`,
		profile.ID, profile.Name, profile.Email, profile.Role, profile.CreatedAt)
	return err
}
