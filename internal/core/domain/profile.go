package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role distinguishes the two sides of the marketplace. Creators fund and
// own campaigns; promoters join them for rewards. A profile's role never
// changes after creation.
type Role string

const (
	RoleCreator  Role = "creator"
	RolePromoter Role = "promoter"
)

// ParseRole validates a textual role value.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCreator, RolePromoter:
		return Role(s), true
	}
	return "", false
}

// User is the identity record owned by the auth layer. PasswordHash is a
// bcrypt hash and never leaves the server.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Profile is the application-level view of a user. It shares its ID with
// the owning user record and is created lazily on the first authenticated
// request that needs one.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// PublicProfile is the subset of a profile visible to other users. It
// deliberately omits the email address.
type PublicProfile struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Public returns the non-sensitive view of the profile.
func (p Profile) Public() PublicProfile {
	return PublicProfile{ID: p.ID, Name: p.Name}
}
