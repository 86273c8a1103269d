package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"viralink/internal/core/domain"
)

// Session identifies the authenticated caller of a request. It is decoded
// from the bearer token by the HTTP middleware and passed explicitly into
// services; there is no process-global auth state.
type Session struct {
	UserID uuid.UUID
	Name   string
	Email  string
	Role   domain.Role
}

// RegisterInput carries signup data for the auth service.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginInput carries credentials for the auth service.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is returned on successful registration or login.
type AuthResult struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expiresAt"`
	User      domain.Profile `json:"user"`
}

// AuthService issues and backs session tokens. Token verification itself
// lives in the HTTP middleware.
type AuthService interface {
	// Register creates an identity and returns a session token. A taken
	// email fails with domain.ErrConflict.
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	// Login verifies credentials and returns a session token. Unknown
	// email or wrong password fail with domain.ErrUnauthorized.
	Login(ctx context.Context, in LoginInput) (*AuthResult, error)
}

// ProfileService resolves sessions to application profiles.
type ProfileService interface {
	// Ensure returns the caller's profile, creating it from the session
	// claims if this is the first authenticated request.
	Ensure(ctx context.Context, s Session) (*domain.Profile, error)
}

// CreateCampaignInput is the request body for campaign creation.
type CreateCampaignInput struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Objective    string `json:"objective"`
	Budget       int64  `json:"budget"`
	RewardModel  string `json:"rewardModel"`
	RewardRate   int64  `json:"rewardRate"`
	ContentLink  string `json:"contentLink"`
	Instructions string `json:"instructions"`
}

// CreatorCampaign is a campaign annotated with aggregates derived from
// its enrollment rows for the owner's listing.
type CreatorCampaign struct {
	Campaign        domain.Campaign `json:"campaign"`
	TotalClicks     int64           `json:"totalClicks"`
	TotalEarnings   int64           `json:"totalEarnings"`
	ActivePromoters int64           `json:"activePromoters"`
}

// CampaignService is the CRUD surface over campaigns. Caller role and
// ownership checks happen here, not in the HTTP layer.
type CampaignService interface {
	// Create stores a new active campaign for a creator caller.
	Create(ctx context.Context, s Session, in CreateCampaignInput) (*domain.Campaign, error)
	// Get returns a campaign owned by the caller; domain.ErrNotFound when
	// absent or owned by someone else.
	Get(ctx context.Context, s Session, id uuid.UUID) (*domain.Campaign, error)
	// UpdateStatus toggles an owned campaign between active and paused.
	UpdateStatus(ctx context.Context, s Session, id uuid.UUID, status string) (*domain.Campaign, error)
	// ListMine returns the caller's campaigns with derived aggregates.
	ListMine(ctx context.Context, s Session, f CampaignFilter) ([]CreatorCampaign, error)
	// Discover returns active campaigns not owned by the caller.
	Discover(ctx context.Context, s Session, f CampaignFilter) ([]DiscoverRow, error)
	// Promoters returns the enrollments of an owned campaign.
	Promoters(ctx context.Context, s Session, id uuid.UUID) ([]EnrollmentWithPromoter, error)
}

// JoinResult is returned by the join workflow. AlreadyJoined marks the
// idempotent path: the enrollment existed and the original tracking link
// is returned unchanged.
type JoinResult struct {
	EnrollmentID  uuid.UUID `json:"enrollmentId"`
	TrackingLink  string    `json:"trackingLink"`
	JoinedAt      time.Time `json:"joinedAt"`
	AlreadyJoined bool      `json:"alreadyJoined"`
}

// EnrollmentService implements the join workflow and tracking-link
// resolution.
type EnrollmentService interface {
	// Join enrolls a promoter caller into a campaign per the join
	// contract: idempotent on repeat joins, domain.ErrNotFound for
	// unknown campaigns, domain.ErrConflict for inactive campaigns and
	// self-joins.
	Join(ctx context.Context, s Session, campaignID uuid.UUID) (*JoinResult, error)
	// ListMine returns the promoter caller's enrollments with campaigns.
	ListMine(ctx context.Context, s Session) ([]EnrollmentWithCampaign, error)
	// Track resolves a tracking code, records the click when the campaign
	// accepts it, and returns the content link to redirect to.
	Track(ctx context.Context, code string) (string, error)
}

// CreatorSummary aggregates a creator's dashboard numbers.
type CreatorSummary struct {
	ActiveCampaigns int64 `json:"activeCampaigns"`
	TotalPromoters  int64 `json:"totalPromoters"`
	TotalClicks     int64 `json:"totalClicks"`
	TotalSpent      int64 `json:"totalSpent"`
}

// PromoterSummary aggregates a promoter's dashboard numbers.
type PromoterSummary struct {
	ActiveEnrollments int64 `json:"activeEnrollments"`
	TotalClicks       int64 `json:"totalClicks"`
	TotalEarnings     int64 `json:"totalEarnings"`
}

// DashboardSummary is the role-appropriate dashboard payload; exactly one
// field is set.
type DashboardSummary struct {
	Creator  *CreatorSummary  `json:"creator,omitempty"`
	Promoter *PromoterSummary `json:"promoter,omitempty"`
}

// DashboardService recomputes summary statistics on every call; nothing
// is persisted.
type DashboardService interface {
	Summary(ctx context.Context, s Session) (*DashboardSummary, error)
}
