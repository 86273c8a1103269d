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

func TestCreatorSummaryAggregation(t *testing.T) {
	p1, p2 := uuid.New(), uuid.New()
	campaigns := []domain.Campaign{
		{ID: uuid.New(), Status: domain.CampaignActive},
		{ID: uuid.New(), Status: domain.CampaignPaused},
		{ID: uuid.New(), Status: domain.CampaignActive},
	}
	enrollments := []domain.Enrollment{
		{PromoterID: p1, Clicks: 10, Earnings: 500},
		{PromoterID: p2, Clicks: 5, Earnings: 250},
		{PromoterID: p1, Clicks: 2, Earnings: 100}, // same promoter, second campaign
	}

	s := CreatorSummary(campaigns, enrollments)
	if s.ActiveCampaigns != 2 {
		t.Fatalf("active campaigns: got %d, want 2", s.ActiveCampaigns)
	}
	if s.TotalPromoters != 2 {
		t.Fatalf("distinct promoters: got %d, want 2", s.TotalPromoters)
	}
	if s.TotalClicks != 17 || s.TotalSpent != 850 {
		t.Fatalf("totals wrong: %+v", s)
	}
}

func TestCreatorSummaryEmpty(t *testing.T) {
	s := CreatorSummary(nil, nil)
	if s != (port.CreatorSummary{}) {
		t.Fatalf("empty input must yield zero summary, got %+v", s)
	}
}

func TestPromoterSummaryAggregation(t *testing.T) {
	rows := []port.EnrollmentWithCampaign{
		{Enrollment: domain.Enrollment{Status: domain.EnrollmentActive, Clicks: 12, Earnings: 600}},
		{Enrollment: domain.Enrollment{Status: domain.EnrollmentJoined, Clicks: 1, Earnings: 50}},
	}

	s := PromoterSummary(rows)
	if s.ActiveEnrollments != 1 {
		t.Fatalf("active enrollments: got %d, want 1", s.ActiveEnrollments)
	}
	if s.TotalClicks != 13 || s.TotalEarnings != 650 {
		t.Fatalf("totals wrong: %+v", s)
	}
}

// TestSummaryBranchesOnRole checks exactly one side of the payload is
// populated per role.
func TestSummaryBranchesOnRole(t *testing.T) {
	t.Run("creator", func(t *testing.T) {
		profiles := mocks.NewMockProfileService(t)
		campaigns := mocks.NewMockCampaignRepository(t)
		enrollments := mocks.NewMockEnrollmentRepository(t)

		session, profile := creatorSession()
		profiles.EXPECT().Ensure(mock.Anything, session).Return(profile, nil)
		campaigns.EXPECT().
			ListByCreator(mock.Anything, profile.ID, port.CampaignFilter{}).
			Return(nil, nil)
		enrollments.EXPECT().ListByCampaigns(mock.Anything, []uuid.UUID{}).Return(nil, nil)

		svc := NewDashboardUseCase(profiles, campaigns, enrollments)

		summary, err := svc.Summary(context.Background(), session)
		if err != nil {
			t.Fatalf("Summary error: %v", err)
		}
		if summary.Creator == nil || summary.Promoter != nil {
			t.Fatalf("creator summary shape wrong: %+v", summary)
		}
	})

	t.Run("promoter", func(t *testing.T) {
		profiles := mocks.NewMockProfileService(t)
		campaigns := mocks.NewMockCampaignRepository(t)
		enrollments := mocks.NewMockEnrollmentRepository(t)

		session, profile := promoterSession()
		profiles.EXPECT().Ensure(mock.Anything, session).Return(profile, nil)
		enrollments.EXPECT().ListByPromoter(mock.Anything, profile.ID).Return(nil, nil)

		svc := NewDashboardUseCase(profiles, campaigns, enrollments)

		summary, err := svc.Summary(context.Background(), session)
		if err != nil {
			t.Fatalf("Summary error: %v", err)
		}
		if summary.Promoter == nil || summary.Creator != nil {
			t.Fatalf("promoter summary shape wrong: %+v", summary)
		}
	})
}
