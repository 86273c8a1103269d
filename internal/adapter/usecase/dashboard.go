package usecase

import (
	"context"

	"github.com/google/uuid"

	"viralink/internal/core/domain"
	"viralink/internal/core/port"
)

// DashboardUseCase recomputes role-appropriate summary statistics from
// freshly fetched collections on every call. It implements
// port.DashboardService.
type DashboardUseCase struct {
	profiles    port.ProfileService
	campaigns   port.CampaignRepository
	enrollments port.EnrollmentRepository
}

// NewDashboardUseCase creates a new usecase with the provided
// dependencies.
func NewDashboardUseCase(profiles port.ProfileService, campaigns port.CampaignRepository, enrollments port.EnrollmentRepository) *DashboardUseCase {
	return &DashboardUseCase{profiles: profiles, campaigns: campaigns, enrollments: enrollments}
}

// Summary returns the dashboard numbers for the caller's role. Empty
// collections yield zero-valued summaries, never errors.
func (u *DashboardUseCase) Summary(ctx context.Context, s port.Session) (*port.DashboardSummary, error) {
	profile, err := u.profiles.Ensure(ctx, s)
	if err != nil {
		return nil, err
	}

	if profile.Role == domain.RoleCreator {
		campaigns, err := u.campaigns.ListByCreator(ctx, profile.ID, port.CampaignFilter{})
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
		summary := CreatorSummary(campaigns, enrollments)
		return &port.DashboardSummary{Creator: &summary}, nil
	}

	rows, err := u.enrollments.ListByPromoter(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	summary := PromoterSummary(rows)
	return &port.DashboardSummary{Promoter: &summary}, nil
}

// CreatorSummary reduces a creator's campaigns and their enrollment rows
// into dashboard aggregates: active-campaign count, distinct promoters
// across all enrollments, total clicks and total spend (sum of
// per-enrollment earnings).
func CreatorSummary(campaigns []domain.Campaign, enrollments []domain.Enrollment) port.CreatorSummary {
	var s port.CreatorSummary
	for _, c := range campaigns {
		if c.Status == domain.CampaignActive {
			s.ActiveCampaigns++
		}
	}
	promoters := make(map[uuid.UUID]struct{})
	for _, e := range enrollments {
		promoters[e.PromoterID] = struct{}{}
		s.TotalClicks += e.Clicks
		s.TotalSpent += e.Earnings
	}
	s.TotalPromoters = int64(len(promoters))
	return s
}

// PromoterSummary reduces a promoter's enrollments into dashboard
// aggregates.
func PromoterSummary(rows []port.EnrollmentWithCampaign) port.PromoterSummary {
	var s port.PromoterSummary
	for _, row := range rows {
		if row.Enrollment.Status == domain.EnrollmentActive {
			s.ActiveEnrollments++
		}
		s.TotalClicks += row.Enrollment.Clicks
		s.TotalEarnings += row.Enrollment.Earnings
	}
	return s
}
