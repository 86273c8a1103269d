package port

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"viralink/internal/core/domain"
)

// Sentinel errors surfaced by repository implementations so the service
// layer can react without depending on driver error codes.
var (
	// ErrDuplicateEnrollment reports a unique-constraint violation on the
	// (promoter, campaign) pair: another enrollment won the race.
	ErrDuplicateEnrollment = errors.New("enrollment already exists")
	// ErrBudgetExhausted reports that recording a click would push the
	// campaign's spent budget over its total budget.
	ErrBudgetExhausted = errors.New("campaign budget exhausted")
)

// CampaignFilter narrows and pages campaign listings. Limit and Offset of
// zero mean "no limit" and "from the start".
type CampaignFilter struct {
	Status *domain.CampaignStatus
	Limit  int
	Offset int
}

// DiscoverRow is a campaign annotated for the discovery listing: the
// creator's public name (never email) and how many promoters enrolled.
type DiscoverRow struct {
	Campaign    domain.Campaign      `json:"campaign"`
	Creator     domain.PublicProfile `json:"creator"`
	Enrollments int64                `json:"enrollments"`
}

// EnrollmentWithPromoter pairs an enrollment with the promoter's public
// profile for owner-facing listings.
type EnrollmentWithPromoter struct {
	Enrollment domain.Enrollment    `json:"enrollment"`
	Promoter   domain.PublicProfile `json:"promoter"`
}

// EnrollmentWithCampaign pairs an enrollment with its campaign for
// promoter-facing listings.
type EnrollmentWithCampaign struct {
	Enrollment domain.Enrollment `json:"enrollment"`
	Campaign   domain.Campaign   `json:"campaign"`
}

// UserRepository persists identity records for the auth layer.
type UserRepository interface {
	// Create inserts a user. A duplicate email returns an error wrapping
	// domain.ErrConflict.
	Create(ctx context.Context, user *domain.User) error
	// GetByEmail returns the user with the given email, or nil when absent.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// ProfileRepository persists application-level profiles.
type ProfileRepository interface {
	// Get returns the profile with the given id, or nil when absent.
	Get(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	// Create inserts a profile. Inserting an existing id is a no-op so
	// lazy creation tolerates concurrent first requests.
	Create(ctx context.Context, profile *domain.Profile) error
}

// CampaignRepository persists campaigns. It is an outbound port;
// implementations must be safe for concurrent use.
type CampaignRepository interface {
	// Create inserts a campaign.
	Create(ctx context.Context, c *domain.Campaign) error
	// GetByID returns a campaign by id, or nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// GetOwned returns a campaign only when it is owned by creatorID, or
	// nil otherwise. Non-owners cannot distinguish "absent" from "not
	// mine".
	GetOwned(ctx context.Context, id, creatorID uuid.UUID) (*domain.Campaign, error)
	// ListByCreator returns the creator's campaigns, newest first.
	ListByCreator(ctx context.Context, creatorID uuid.UUID, f CampaignFilter) ([]domain.Campaign, error)
	// ListDiscover returns campaigns matching the filter that are NOT
	// owned by viewerID, newest first, annotated with the creator's
	// public name and enrollment count.
	ListDiscover(ctx context.Context, viewerID uuid.UUID, f CampaignFilter) ([]DiscoverRow, error)
	// UpdateStatus sets the status of a campaign owned by creatorID. It
	// reports whether a row was updated.
	UpdateStatus(ctx context.Context, id, creatorID uuid.UUID, status domain.CampaignStatus) (bool, error)
}

// EnrollmentRepository persists promoter-campaign links. The write methods
// keep the campaign counters consistent within a single transaction.
type EnrollmentRepository interface {
	// GetByPromoterAndCampaign returns the enrollment for the pair, or
	// nil when the promoter has not joined the campaign.
	GetByPromoterAndCampaign(ctx context.Context, promoterID, campaignID uuid.UUID) (*domain.Enrollment, error)
	// Create inserts the enrollment AND increments the campaign's
	// promoters_count as one atomic unit. A (promoter, campaign) unique
	// violation returns ErrDuplicateEnrollment with nothing persisted.
	Create(ctx context.Context, e *domain.Enrollment) error
	// GetByTrackingCode returns the enrollment owning the tracking code,
	// or nil when unknown.
	GetByTrackingCode(ctx context.Context, code string) (*domain.Enrollment, error)
	// RecordClick atomically increments the enrollment's clicks (and
	// earnings by `earnings`) together with the campaign's clicks_count
	// and spent_budget. When earnings would push spent_budget over the
	// campaign budget it returns ErrBudgetExhausted and records nothing.
	RecordClick(ctx context.Context, enrollmentID uuid.UUID, earnings int64) error
	// ListByCampaign returns a campaign's enrollments with promoter
	// names, newest first.
	ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]EnrollmentWithPromoter, error)
	// ListByCampaigns returns all enrollments for the given campaigns.
	ListByCampaigns(ctx context.Context, campaignIDs []uuid.UUID) ([]domain.Enrollment, error)
	// ListByPromoter returns the promoter's enrollments with their
	// campaigns, newest first.
	ListByPromoter(ctx context.Context, promoterID uuid.UUID) ([]EnrollmentWithCampaign, error)
}
