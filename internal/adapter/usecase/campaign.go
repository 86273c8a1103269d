package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"viralink/internal/core/domain"
	"viralink/internal/core/port"
)

// maxPageSize caps the limit query parameter on listings.
const maxPageSize = 100

// CampaignUseCase provides the campaign CRUD surface and listing views.
// It implements port.CampaignService.
type CampaignUseCase struct {
	profiles    port.ProfileService
	campaigns   port.CampaignRepository
	enrollments port.EnrollmentRepository
}

// NewCampaignUseCase creates a new usecase with the provided
// dependencies.
func NewCampaignUseCase(profiles port.ProfileService, campaigns port.CampaignRepository, enrollments port.EnrollmentRepository) *CampaignUseCase {
	return &CampaignUseCase{profiles: profiles, campaigns: campaigns, enrollments: enrollments}
}

// Create validates the input and stores a new active campaign with
// zeroed counters. Only creator profiles may create campaigns.
func (u *CampaignUseCase) Create(ctx context.Context, s port.Session, in port.CreateCampaignInput) (*domain.Campaign, error) {
	profile, err := u.profiles.Ensure(ctx, s)
	if err != nil {
		return nil, err
	}
	if profile.Role != domain.RoleCreator {
		return nil, fmt.Errorf("only creators can create campaigns: %w", domain.ErrForbidden)
	}

	draft := domain.CampaignDraft{
		Title:        in.Title,
		Description:  in.Description,
		Objective:    in.Objective,
		Budget:       in.Budget,
		RewardModel:  in.RewardModel,
		RewardRate:   in.RewardRate,
		ContentLink:  in.ContentLink,
		Instructions: in.Instructions,
	}
	if err = draft.Validate(); err != nil {
		return nil, err
	}

	c := &domain.Campaign{
		ID:           uuid.New(),
		CreatorID:    profile.ID,
		Title:        draft.Title,
		Description:  draft.Description,
		Objective:    draft.Objective,
		Budget:       draft.Budget,
		RewardModel:  domain.RewardModel(draft.RewardModel),
		RewardRate:   draft.RewardRate,
		ContentLink:  draft.ContentLink,
		Instructions: draft.Instructions,
		Status:       domain.CampaignActive,
		CreatedAt:    time.Now().UTC(),
	}
	if err = u.campaigns.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns a campaign owned by the caller. Campaigns of other
// creators are indistinguishable from absent ones.
func (u *CampaignUseCase) Get(ctx context.Context, s port.Session, id uuid.UUID) (*domain.Campaign, error) {
	profile, err := u.profiles.Ensure(ctx, s)
	if err != nil {
		return nil, err
	}
	c, err := u.campaigns.GetOwned(ctx, id, profile.ID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("campaign: %w", domain.ErrNotFound)
	}
	return c, nil
}

// UpdateStatus toggles an owned campaign between active and paused.
// Completed campaigns cannot be toggled and completed cannot be set.
func (u *CampaignUseCase) UpdateStatus(ctx context.Context, s port.Session, id uuid.UUID, status string) (*domain.Campaign, error) {
	profile, err := u.profiles.Ensure(ctx, s)
	if err != nil {
		return nil, err
	}
	target, ok := domain.ParseCampaignStatus(status)
	if !ok {
		return nil, domain.Invalid("status", "status must be one of active, paused, completed")
	}
	if target == domain.CampaignCompleted {
		return nil, fmt.Errorf("campaigns cannot be completed through the API: %w", domain.ErrConflict)
	}

	current, err := u.campaigns.GetOwned(ctx, id, profile.ID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, fmt.Errorf("campaign: %w", domain.ErrNotFound)
	}
	if current.Status == domain.CampaignCompleted {
		return nil, fmt.Errorf("completed campaigns cannot change status: %w", domain.ErrConflict)
	}

	updated, err := u.campaigns.UpdateStatus(ctx, id, profile.ID, target)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, fmt.Errorf("campaign: %w", domain.ErrNotFound)
	}
	current.Status = target
	return current, nil
}

// ListMine returns the caller's campaigns, newest first, annotated with
// aggregates reduced from the fetched enrollment rows in memory.
func (u *CampaignUseCase) ListMine(ctx context.Context, s port.Session, f port.CampaignFilter) ([]port.CreatorCampaign, error) {
	profile, err := u.profiles.Ensure(ctx, s)
	if err != nil {
		return nil, err
	}
	if err = validateFilter(f); err != nil {
		return nil, err
	}

	campaigns, err := u.campaigns.ListByCreator(ctx, profile.ID, f)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, len(campaigns))
	for i, c := range campaigns {
		ids[i] = c.ID
	}
	enrollments, err := u.enrollments.ListByCampaigns(ctx, ids)
	if err != nil {
		return nil, err
	}

	byCampaign := make(map[uuid.UUID][]domain.Enrollment, len(campaigns))
	for _, e := range enrollments {
		byCampaign[e.CampaignID] = append(byCampaign[e.CampaignID], e)
	}
	out := make([]port.CreatorCampaign, len(campaigns))
	for i, c := range campaigns {
		cc := port.CreatorCampaign{Campaign: c}
		for _, e := range byCampaign[c.ID] {
			cc.TotalClicks += e.Clicks
			cc.TotalEarnings += e.Earnings
			if e.Status == domain.EnrollmentActive {
				cc.ActivePromoters++
			}
		}
		out[i] = cc
	}
	return out, nil
}

// Discover returns active campaigns not owned by the caller, newest
// first. Only the active status is exposed through discovery.
func (u *CampaignUseCase) Discover(ctx context.Context, s port.Session, f port.CampaignFilter) ([]port.DiscoverRow, error) {
	profile, err := u.profiles.Ensure(ctx, s)
	if err != nil {
		return nil, err
	}
	if err = validateFilter(f); err != nil {
		return nil, err
	}
	if f.Status != nil && *f.Status != domain.CampaignActive {
		return nil, domain.Invalid("status", "discovery only lists active campaigns")
	}
	active := domain.CampaignActive
	f.Status = &active
	return u.campaigns.ListDiscover(ctx, profile.ID, f)
}

// Promoters returns the enrollments of a campaign the caller owns.
func (u *CampaignUseCase) Promoters(ctx context.Context, s port.Session, id uuid.UUID) ([]port.EnrollmentWithPromoter, error) {
	profile, err := u.profiles.Ensure(ctx, s)
	if err != nil {
		return nil, err
	}
	c, err := u.campaigns.GetOwned(ctx, id, profile.ID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("campaign: %w", domain.ErrNotFound)
	}
	return u.enrollments.ListByCampaign(ctx, id)
}

func validateFilter(f port.CampaignFilter) error {
	var fields []domain.FieldError
	if f.Limit < 0 || f.Limit > maxPageSize {
		fields = append(fields, domain.FieldError{Field: "limit", Message: "limit must be between 0 and 100"})
	}
	if f.Offset < 0 {
		fields = append(fields, domain.FieldError{Field: "offset", Message: "offset must not be negative"})
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
