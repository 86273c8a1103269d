package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"viralink/internal/core/domain"
	"viralink/internal/core/port"
	"viralink/internal/tracking"
)

// EnrollmentUseCase implements the join workflow and tracking-link
// resolution. It implements port.EnrollmentService.
type EnrollmentUseCase struct {
	profiles    port.ProfileService
	campaigns   port.CampaignRepository
	enrollments port.EnrollmentRepository
	baseURL     string
}

// NewEnrollmentUseCase creates a new usecase. baseURL is the public
// application URL that tracking links are built on.
func NewEnrollmentUseCase(profiles port.ProfileService, campaigns port.CampaignRepository, enrollments port.EnrollmentRepository, baseURL string) *EnrollmentUseCase {
	return &EnrollmentUseCase{
		profiles:    profiles,
		campaigns:   campaigns,
		enrollments: enrollments,
		baseURL:     baseURL,
	}
}

// Join enrolls the promoter caller into a campaign, at most once. The
// business rules run in order: existing enrollment wins idempotently,
// then the campaign must exist, be active and not be the caller's own.
// The insert and the promoters_count increment are one atomic unit in
// the repository; when a concurrent join gets there first, the unique
// constraint rejects the insert and the winner's link is returned as the
// already-joined result.
func (u *EnrollmentUseCase) Join(ctx context.Context, s port.Session, campaignID uuid.UUID) (*port.JoinResult, error) {
	profile, err := u.profiles.Ensure(ctx, s)
	if err != nil {
		return nil, err
	}
	if profile.Role != domain.RolePromoter {
		return nil, fmt.Errorf("only promoters can join campaigns: %w", domain.ErrForbidden)
	}

	existing, err := u.enrollments.GetByPromoterAndCampaign(ctx, profile.ID, campaignID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return alreadyJoined(existing), nil
	}

	campaign, err := u.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, fmt.Errorf("campaign: %w", domain.ErrNotFound)
	}
	if campaign.Status != domain.CampaignActive {
		return nil, fmt.Errorf("campaign is not active: %w", domain.ErrConflict)
	}
	if campaign.CreatorID == profile.ID {
		return nil, fmt.Errorf("creators cannot join their own campaign: %w", domain.ErrConflict)
	}

	code := tracking.NewCode()
	enrollment := &domain.Enrollment{
		ID:           uuid.New(),
		PromoterID:   profile.ID,
		CampaignID:   campaignID,
		TrackingCode: code,
		TrackingLink: tracking.Link(u.baseURL, code),
		Status:       domain.EnrollmentActive,
		JoinedAt:     time.Now().UTC(),
	}
	err = u.enrollments.Create(ctx, enrollment)
	if errors.Is(err, port.ErrDuplicateEnrollment) {
		// lost the race: surface the winner's enrollment idempotently
		winner, getErr := u.enrollments.GetByPromoterAndCampaign(ctx, profile.ID, campaignID)
		if getErr != nil {
			return nil, getErr
		}
		if winner == nil {
			return nil, err
		}
		return alreadyJoined(winner), nil
	}
	if err != nil {
		return nil, err
	}

	return &port.JoinResult{
		EnrollmentID: enrollment.ID,
		TrackingLink: enrollment.TrackingLink,
		JoinedAt:     enrollment.JoinedAt,
	}, nil
}

func alreadyJoined(e *domain.Enrollment) *port.JoinResult {
	return &port.JoinResult{
		EnrollmentID:  e.ID,
		TrackingLink:  e.TrackingLink,
		JoinedAt:      e.JoinedAt,
		AlreadyJoined: true,
	}
}

// ListMine returns the promoter caller's enrollments with their
// campaigns, newest first.
func (u *EnrollmentUseCase) ListMine(ctx context.Context, s port.Session) ([]port.EnrollmentWithCampaign, error) {
	profile, err := u.profiles.Ensure(ctx, s)
	if err != nil {
		return nil, err
	}
	if profile.Role != domain.RolePromoter {
		return nil, fmt.Errorf("only promoters have enrollments: %w", domain.ErrForbidden)
	}
	return u.enrollments.ListByPromoter(ctx, profile.ID)
}

// Track resolves a tracking code to the campaign's content link. Clicks
// are recorded only while the campaign is active; for per-click reward
// campaigns the reward rate is credited to the promoter and charged to
// the campaign budget. An exhausted budget or paused campaign still
// redirects, without recording.
func (u *EnrollmentUseCase) Track(ctx context.Context, code string) (string, error) {
	enrollment, err := u.enrollments.GetByTrackingCode(ctx, code)
	if err != nil {
		return "", err
	}
	if enrollment == nil {
		return "", fmt.Errorf("tracking code: %w", domain.ErrNotFound)
	}
	campaign, err := u.campaigns.GetByID(ctx, enrollment.CampaignID)
	if err != nil {
		return "", err
	}
	if campaign == nil {
		return "", fmt.Errorf("campaign: %w", domain.ErrNotFound)
	}

	if campaign.Status == domain.CampaignActive {
		var earnings int64
		if campaign.RewardModel == domain.RewardPerClick {
			earnings = campaign.RewardRate
		}
		err = u.enrollments.RecordClick(ctx, enrollment.ID, earnings)
		if err != nil && !errors.Is(err, port.ErrBudgetExhausted) {
			return "", err
		}
	}
	return campaign.ContentLink, nil
}
