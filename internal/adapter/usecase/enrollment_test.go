package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"viralink/internal/core/domain"
	"viralink/internal/core/port"
	"viralink/internal/core/port/mocks"
)

const testBaseURL = "https://viralink.test"

func promoterSession() (port.Session, *domain.Profile) {
	id := uuid.New()
	s := port.Session{UserID: id, Name: "Pat", Email: "pat@example.com", Role: domain.RolePromoter}
	p := &domain.Profile{ID: id, Name: "Pat", Email: "pat@example.com", Role: domain.RolePromoter}
	return s, p
}

// TestJoinCreatesEnrollment covers the happy path: a promoter joins an
// active campaign and gets a tracking link back.
func TestJoinCreatesEnrollment(t *testing.T) {
	profiles := mocks.NewMockProfileService(t)
	campaigns := mocks.NewMockCampaignRepository(t)
	enrollments := mocks.NewMockEnrollmentRepository(t)

	session, profile := promoterSession()
	campaign := &domain.Campaign{
		ID:        uuid.New(),
		CreatorID: uuid.New(),
		Status:    domain.CampaignActive,
	}

	profiles.EXPECT().Ensure(mock.Anything, session).Return(profile, nil)
	enrollments.EXPECT().
		GetByPromoterAndCampaign(mock.Anything, profile.ID, campaign.ID).
		Return(nil, nil)
	campaigns.EXPECT().GetByID(mock.Anything, campaign.ID).Return(campaign, nil)

	var created *domain.Enrollment
	enrollments.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.Enrollment")).
		Run(func(ctx context.Context, e *domain.Enrollment) {
			created = e
		}).
		Return(nil)

	svc := NewEnrollmentUseCase(profiles, campaigns, enrollments, testBaseURL)

	result, err := svc.Join(context.Background(), session, campaign.ID)
	if err != nil {
		t.Fatalf("Join error: %v", err)
	}
	if result.AlreadyJoined {
		t.Fatalf("first join reported as already joined")
	}
	if created == nil {
		t.Fatalf("no enrollment persisted")
	}
	if created.PromoterID != profile.ID || created.CampaignID != campaign.ID {
		t.Fatalf("enrollment links wrong pair: %+v", created)
	}
	want := testBaseURL + "/track/" + created.TrackingCode
	if result.TrackingLink != want {
		t.Fatalf("tracking link: got %q, want %q", result.TrackingLink, want)
	}
}

// TestJoinIsIdempotent ensures a second join returns the first
// enrollment's link without touching the campaign.
func TestJoinIsIdempotent(t *testing.T) {
	profiles := mocks.NewMockProfileService(t)
	campaigns := mocks.NewMockCampaignRepository(t)
	enrollments := mocks.NewMockEnrollmentRepository(t)

	session, profile := promoterSession()
	campaignID := uuid.New()
	existing := &domain.Enrollment{
		ID:           uuid.New(),
		PromoterID:   profile.ID,
		CampaignID:   campaignID,
		TrackingLink: testBaseURL + "/track/aabbccddeeff",
		JoinedAt:     time.Now().Add(-time.Hour),
	}

	profiles.EXPECT().Ensure(mock.Anything, session).Return(profile, nil)
	enrollments.EXPECT().
		GetByPromoterAndCampaign(mock.Anything, profile.ID, campaignID).
		Return(existing, nil)

	svc := NewEnrollmentUseCase(profiles, campaigns, enrollments, testBaseURL)

	result, err := svc.Join(context.Background(), session, campaignID)
	if err != nil {
		t.Fatalf("Join error: %v", err)
	}
	if !result.AlreadyJoined {
		t.Fatalf("repeat join not reported as already joined")
	}
	if result.EnrollmentID != existing.ID || result.TrackingLink != existing.TrackingLink {
		t.Fatalf("repeat join did not return the original enrollment: %+v", result)
	}
}

// TestJoinLostRace exercises the concurrent double-join: the insert hits
// the unique constraint and the winner's enrollment is returned.
func TestJoinLostRace(t *testing.T) {
	profiles := mocks.NewMockProfileService(t)
	campaigns := mocks.NewMockCampaignRepository(t)
	enrollments := mocks.NewMockEnrollmentRepository(t)

	session, profile := promoterSession()
	campaign := &domain.Campaign{ID: uuid.New(), CreatorID: uuid.New(), Status: domain.CampaignActive}
	winner := &domain.Enrollment{
		ID:           uuid.New(),
		PromoterID:   profile.ID,
		CampaignID:   campaign.ID,
		TrackingLink: testBaseURL + "/track/001122334455",
	}

	profiles.EXPECT().Ensure(mock.Anything, session).Return(profile, nil)
	enrollments.EXPECT().
		GetByPromoterAndCampaign(mock.Anything, profile.ID, campaign.ID).
		Return(nil, nil).Once()
	campaigns.EXPECT().GetByID(mock.Anything, campaign.ID).Return(campaign, nil)
	enrollments.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.Enrollment")).
		Return(port.ErrDuplicateEnrollment)
	enrollments.EXPECT().
		GetByPromoterAndCampaign(mock.Anything, profile.ID, campaign.ID).
		Return(winner, nil).Once()

	svc := NewEnrollmentUseCase(profiles, campaigns, enrollments, testBaseURL)

	result, err := svc.Join(context.Background(), session, campaign.ID)
	if err != nil {
		t.Fatalf("Join error: %v", err)
	}
	if !result.AlreadyJoined || result.EnrollmentID != winner.ID {
		t.Fatalf("lost race did not resolve to the winner: %+v", result)
	}
}

// TestJoinRejections walks the ordered business rules that refuse a join.
func TestJoinRejections(t *testing.T) {
	session, profile := promoterSession()

	cases := []struct {
		name     string
		campaign *domain.Campaign
		wantErr  error
	}{
		{
			name:     "unknown campaign",
			campaign: nil,
			wantErr:  domain.ErrNotFound,
		},
		{
			name:     "paused campaign",
			campaign: &domain.Campaign{ID: uuid.New(), CreatorID: uuid.New(), Status: domain.CampaignPaused},
			wantErr:  domain.ErrConflict,
		},
		{
			name:     "own campaign",
			campaign: &domain.Campaign{ID: uuid.New(), CreatorID: profile.ID, Status: domain.CampaignActive},
			wantErr:  domain.ErrConflict,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profiles := mocks.NewMockProfileService(t)
			campaigns := mocks.NewMockCampaignRepository(t)
			enrollments := mocks.NewMockEnrollmentRepository(t)

			campaignID := uuid.New()
			if tc.campaign != nil {
				campaignID = tc.campaign.ID
			}

			profiles.EXPECT().Ensure(mock.Anything, session).Return(profile, nil)
			enrollments.EXPECT().
				GetByPromoterAndCampaign(mock.Anything, profile.ID, campaignID).
				Return(nil, nil)
			campaigns.EXPECT().GetByID(mock.Anything, campaignID).Return(tc.campaign, nil)

			svc := NewEnrollmentUseCase(profiles, campaigns, enrollments, testBaseURL)

			_, err := svc.Join(context.Background(), session, campaignID)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got error %v, want %v", err, tc.wantErr)
			}
		})
	}
}

// TestJoinRequiresPromoter rejects creator callers before touching any
// repository.
func TestJoinRequiresPromoter(t *testing.T) {
	profiles := mocks.NewMockProfileService(t)
	campaigns := mocks.NewMockCampaignRepository(t)
	enrollments := mocks.NewMockEnrollmentRepository(t)

	id := uuid.New()
	session := port.Session{UserID: id, Role: domain.RoleCreator}
	profile := &domain.Profile{ID: id, Role: domain.RoleCreator}

	profiles.EXPECT().Ensure(mock.Anything, session).Return(profile, nil)

	svc := NewEnrollmentUseCase(profiles, campaigns, enrollments, testBaseURL)

	_, err := svc.Join(context.Background(), session, uuid.New())
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("got error %v, want ErrForbidden", err)
	}
}

// TestTrackRecordsClick checks that an active per-click campaign credits
// the reward rate when its link is followed.
func TestTrackRecordsClick(t *testing.T) {
	profiles := mocks.NewMockProfileService(t)
	campaigns := mocks.NewMockCampaignRepository(t)
	enrollments := mocks.NewMockEnrollmentRepository(t)

	enrollment := &domain.Enrollment{ID: uuid.New(), CampaignID: uuid.New(), TrackingCode: "aabbccddeeff"}
	campaign := &domain.Campaign{
		ID:          enrollment.CampaignID,
		Status:      domain.CampaignActive,
		RewardModel: domain.RewardPerClick,
		RewardRate:  50,
		ContentLink: "https://example.com/video",
	}

	enrollments.EXPECT().GetByTrackingCode(mock.Anything, enrollment.TrackingCode).Return(enrollment, nil)
	campaigns.EXPECT().GetByID(mock.Anything, campaign.ID).Return(campaign, nil)
	enrollments.EXPECT().RecordClick(mock.Anything, enrollment.ID, int64(50)).Return(nil)

	svc := NewEnrollmentUseCase(profiles, campaigns, enrollments, testBaseURL)

	target, err := svc.Track(context.Background(), enrollment.TrackingCode)
	if err != nil {
		t.Fatalf("Track error: %v", err)
	}
	if target != campaign.ContentLink {
		t.Fatalf("got target %q, want %q", target, campaign.ContentLink)
	}
}

// TestTrackPausedCampaign still redirects but records nothing.
func TestTrackPausedCampaign(t *testing.T) {
	profiles := mocks.NewMockProfileService(t)
	campaigns := mocks.NewMockCampaignRepository(t)
	enrollments := mocks.NewMockEnrollmentRepository(t)

	enrollment := &domain.Enrollment{ID: uuid.New(), CampaignID: uuid.New(), TrackingCode: "f00dd00dbeef"}
	campaign := &domain.Campaign{
		ID:          enrollment.CampaignID,
		Status:      domain.CampaignPaused,
		ContentLink: "https://example.com/paused",
	}

	enrollments.EXPECT().GetByTrackingCode(mock.Anything, enrollment.TrackingCode).Return(enrollment, nil)
	campaigns.EXPECT().GetByID(mock.Anything, campaign.ID).Return(campaign, nil)

	svc := NewEnrollmentUseCase(profiles, campaigns, enrollments, testBaseURL)

	target, err := svc.Track(context.Background(), enrollment.TrackingCode)
	if err != nil {
		t.Fatalf("Track error: %v", err)
	}
	if target != campaign.ContentLink {
		t.Fatalf("got target %q, want %q", target, campaign.ContentLink)
	}
}

// TestTrackBudgetExhausted redirects the visitor even when the campaign
// has no budget left for the click.
func TestTrackBudgetExhausted(t *testing.T) {
	profiles := mocks.NewMockProfileService(t)
	campaigns := mocks.NewMockCampaignRepository(t)
	enrollments := mocks.NewMockEnrollmentRepository(t)

	enrollment := &domain.Enrollment{ID: uuid.New(), CampaignID: uuid.New(), TrackingCode: "cafecafecafe"}
	campaign := &domain.Campaign{
		ID:          enrollment.CampaignID,
		Status:      domain.CampaignActive,
		RewardModel: domain.RewardPerClick,
		RewardRate:  100,
		ContentLink: "https://example.com/broke",
	}

	enrollments.EXPECT().GetByTrackingCode(mock.Anything, enrollment.TrackingCode).Return(enrollment, nil)
	campaigns.EXPECT().GetByID(mock.Anything, campaign.ID).Return(campaign, nil)
	enrollments.EXPECT().RecordClick(mock.Anything, enrollment.ID, int64(100)).Return(port.ErrBudgetExhausted)

	svc := NewEnrollmentUseCase(profiles, campaigns, enrollments, testBaseURL)

	target, err := svc.Track(context.Background(), enrollment.TrackingCode)
	if err != nil {
		t.Fatalf("Track error: %v", err)
	}
	if target != campaign.ContentLink {
		t.Fatalf("got target %q, want %q", target, campaign.ContentLink)
	}
}

// TestTrackUnknownCode returns ErrNotFound for codes nobody owns.
func TestTrackUnknownCode(t *testing.T) {
	profiles := mocks.NewMockProfileService(t)
	campaigns := mocks.NewMockCampaignRepository(t)
	enrollments := mocks.NewMockEnrollmentRepository(t)

	enrollments.EXPECT().GetByTrackingCode(mock.Anything, "000000000000").Return(nil, nil)

	svc := NewEnrollmentUseCase(profiles, campaigns, enrollments, testBaseURL)

	_, err := svc.Track(context.Background(), "000000000000")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("got error %v, want ErrNotFound", err)
	}
}
