package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"viralink/internal/adapter/usecase"
	"viralink/internal/auth"
	"viralink/internal/config/configs"
	"viralink/internal/core/domain"
	"viralink/internal/core/port"
	"viralink/internal/core/port/mocks"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

// testEnv wires a full handler over mocked repositories so requests
// exercise routing, middleware, services and the error mapping together.
type testEnv struct {
	handler     *Handler
	tokens      *auth.Tokens
	profiles    *mocks.MockProfileService
	campaigns   *mocks.MockCampaignRepository
	enrollments *mocks.MockEnrollmentRepository
}

func newTestEnv(t *testing.T) *testEnv {
	profiles := mocks.NewMockProfileService(t)
	campaigns := mocks.NewMockCampaignRepository(t)
	enrollments := mocks.NewMockEnrollmentRepository(t)
	users := mocks.NewMockUserRepository(t)

	tokens := auth.NewTokens(configs.Auth{Secret: "test-secret", TokenTTL: time.Hour})

	h := NewHandler(Deps{
		Auth:        usecase.NewAuthUseCase(users, tokens),
		Profiles:    profiles,
		Campaigns:   usecase.NewCampaignUseCase(profiles, campaigns, enrollments),
		Enrollments: usecase.NewEnrollmentUseCase(profiles, campaigns, enrollments, "https://viralink.test"),
		Dashboard:   usecase.NewDashboardUseCase(profiles, campaigns, enrollments),
		Verifier:    tokens,
		DB:          stubPinger{},
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return &testEnv{
		handler:     h,
		tokens:      tokens,
		profiles:    profiles,
		campaigns:   campaigns,
		enrollments: enrollments,
	}
}

// login issues a real bearer token and stubs profile resolution for it.
func (e *testEnv) login(t *testing.T, role domain.Role) (string, *domain.Profile) {
	user := &domain.User{ID: uuid.New(), Name: "Test User", Email: "user@example.com", Role: role}
	token, _, err := e.tokens.Issue(user)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	profile := &domain.Profile{ID: user.ID, Name: user.Name, Email: user.Email, Role: role}
	e.profiles.EXPECT().Ensure(mock.Anything, mock.Anything).Return(profile, nil).Maybe()
	return token, profile
}

func (e *testEnv) do(method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.handler.Router().ServeHTTP(rec, req)
	return rec
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	var body errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body is not JSON: %v (%s)", err, rec.Body.String())
	}
	return body
}

// TestJoinCampaignStatuses drives the join endpoint through its status
// codes: created, idempotent repeat, conflict, not found, unauthorized.
func TestJoinCampaignStatuses(t *testing.T) {
	t.Run("first join returns 201", func(t *testing.T) {
		env := newTestEnv(t)
		token, profile := env.login(t, domain.RolePromoter)
		campaign := &domain.Campaign{ID: uuid.New(), CreatorID: uuid.New(), Status: domain.CampaignActive}

		env.enrollments.EXPECT().
			GetByPromoterAndCampaign(mock.Anything, profile.ID, campaign.ID).
			Return(nil, nil)
		env.campaigns.EXPECT().GetByID(mock.Anything, campaign.ID).Return(campaign, nil)
		env.enrollments.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Enrollment")).
			Return(nil)

		rec := env.do(http.MethodPost, "/api/join-campaign", token,
			`{"campaignId":"`+campaign.ID.String()+`"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("got status %d, want 201 (%s)", rec.Code, rec.Body.String())
		}
		var result port.JoinResult
		if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
			t.Fatalf("body is not a join result: %v", err)
		}
		if result.AlreadyJoined {
			t.Fatalf("first join reported as already joined")
		}
		if !strings.HasPrefix(result.TrackingLink, "https://viralink.test/track/") {
			t.Fatalf("tracking link wrong: %q", result.TrackingLink)
		}
	})

	t.Run("repeat join returns 200 with original link", func(t *testing.T) {
		env := newTestEnv(t)
		token, profile := env.login(t, domain.RolePromoter)
		campaignID := uuid.New()
		existing := &domain.Enrollment{
			ID:           uuid.New(),
			PromoterID:   profile.ID,
			CampaignID:   campaignID,
			TrackingLink: "https://viralink.test/track/aabbccddeeff",
		}

		env.enrollments.EXPECT().
			GetByPromoterAndCampaign(mock.Anything, profile.ID, campaignID).
			Return(existing, nil)

		rec := env.do(http.MethodPost, "/api/join-campaign", token,
			`{"campaignId":"`+campaignID.String()+`"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("got status %d, want 200 (%s)", rec.Code, rec.Body.String())
		}
		var result port.JoinResult
		if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
			t.Fatalf("body is not a join result: %v", err)
		}
		if !result.AlreadyJoined || result.TrackingLink != existing.TrackingLink {
			t.Fatalf("repeat join did not return the original enrollment: %+v", result)
		}
	})

	t.Run("paused campaign returns 409", func(t *testing.T) {
		env := newTestEnv(t)
		token, profile := env.login(t, domain.RolePromoter)
		campaign := &domain.Campaign{ID: uuid.New(), CreatorID: uuid.New(), Status: domain.CampaignPaused}

		env.enrollments.EXPECT().
			GetByPromoterAndCampaign(mock.Anything, profile.ID, campaign.ID).
			Return(nil, nil)
		env.campaigns.EXPECT().GetByID(mock.Anything, campaign.ID).Return(campaign, nil)

		rec := env.do(http.MethodPost, "/api/join-campaign", token,
			`{"campaignId":"`+campaign.ID.String()+`"}`)
		if rec.Code != http.StatusConflict {
			t.Fatalf("got status %d, want 409", rec.Code)
		}
		if body := decodeErrorBody(t, rec); body.Error.Code != "CONFLICT" {
			t.Fatalf("got code %q, want CONFLICT", body.Error.Code)
		}
	})

	t.Run("unknown campaign returns 404", func(t *testing.T) {
		env := newTestEnv(t)
		token, profile := env.login(t, domain.RolePromoter)
		campaignID := uuid.New()

		env.enrollments.EXPECT().
			GetByPromoterAndCampaign(mock.Anything, profile.ID, campaignID).
			Return(nil, nil)
		env.campaigns.EXPECT().GetByID(mock.Anything, campaignID).Return(nil, nil)

		rec := env.do(http.MethodPost, "/api/join-campaign", token,
			`{"campaignId":"`+campaignID.String()+`"}`)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("got status %d, want 404", rec.Code)
		}
		if body := decodeErrorBody(t, rec); body.Error.Code != "NOT_FOUND" {
			t.Fatalf("got code %q, want NOT_FOUND", body.Error.Code)
		}
	})

	t.Run("creator caller returns 403", func(t *testing.T) {
		env := newTestEnv(t)
		token, _ := env.login(t, domain.RoleCreator)

		rec := env.do(http.MethodPost, "/api/join-campaign", token,
			`{"campaignId":"`+uuid.NewString()+`"}`)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("got status %d, want 403", rec.Code)
		}
	})

	t.Run("missing token returns 401", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(http.MethodPost, "/api/join-campaign", "",
			`{"campaignId":"`+uuid.NewString()+`"}`)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("got status %d, want 401", rec.Code)
		}
		if body := decodeErrorBody(t, rec); body.Error.Code != "UNAUTHORIZED" {
			t.Fatalf("got code %q, want UNAUTHORIZED", body.Error.Code)
		}
	})

	t.Run("garbage token returns 401", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(http.MethodPost, "/api/join-campaign", "not.a.token",
			`{"campaignId":"`+uuid.NewString()+`"}`)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("got status %d, want 401", rec.Code)
		}
	})
}

// TestCreateCampaignValidationEnvelope checks the 400 envelope carries
// field-level details.
func TestCreateCampaignValidationEnvelope(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.login(t, domain.RoleCreator)

	rec := env.do(http.MethodPost, "/api/campaigns", token,
		`{"title":"","description":"d","objective":"o","budget":0,"rewardModel":"ppc","rewardRate":50,"contentLink":"https://example.com/x"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400 (%s)", rec.Code, rec.Body.String())
	}
	body := decodeErrorBody(t, rec)
	if body.Error.Code != "VALIDATION_ERROR" {
		t.Fatalf("got code %q, want VALIDATION_ERROR", body.Error.Code)
	}
	fields := make(map[string]bool, len(body.Error.Details))
	for _, d := range body.Error.Details {
		fields[d.Field] = true
	}
	if !fields["title"] || !fields["budget"] {
		t.Fatalf("details missing offending fields: %+v", body.Error.Details)
	}
}

// TestTrackRedirect follows a tracking code to the content link.
func TestTrackRedirect(t *testing.T) {
	env := newTestEnv(t)

	enrollment := &domain.Enrollment{ID: uuid.New(), CampaignID: uuid.New(), TrackingCode: "aabbccddeeff"}
	campaign := &domain.Campaign{
		ID:          enrollment.CampaignID,
		Status:      domain.CampaignActive,
		RewardModel: domain.RewardPerClick,
		RewardRate:  50,
		ContentLink: "https://example.com/video",
	}

	env.enrollments.EXPECT().GetByTrackingCode(mock.Anything, enrollment.TrackingCode).Return(enrollment, nil)
	env.campaigns.EXPECT().GetByID(mock.Anything, campaign.ID).Return(campaign, nil)
	env.enrollments.EXPECT().RecordClick(mock.Anything, enrollment.ID, int64(50)).Return(nil)

	rec := env.do(http.MethodGet, "/track/aabbccddeeff", "", "")
	if rec.Code != http.StatusFound {
		t.Fatalf("got status %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != campaign.ContentLink {
		t.Fatalf("got location %q, want %q", loc, campaign.ContentLink)
	}
}

func TestTrackUnknownCodeReturns404(t *testing.T) {
	env := newTestEnv(t)

	env.enrollments.EXPECT().GetByTrackingCode(mock.Anything, "000000000000").Return(nil, nil)

	rec := env.do(http.MethodGet, "/track/000000000000", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", rec.Code)
	}
	if body := decodeErrorBody(t, rec); body.Error.Code != "NOT_FOUND" {
		t.Fatalf("got code %q, want NOT_FOUND", body.Error.Code)
	}
}

// TestListingLimitParsing rejects an explicit zero or out-of-range limit
// before any query runs.
func TestListingLimitParsing(t *testing.T) {
	for _, limit := range []string{"0", "-5", "101", "abc"} {
		t.Run("limit="+limit, func(t *testing.T) {
			env := newTestEnv(t)
			token, _ := env.login(t, domain.RolePromoter)

			rec := env.do(http.MethodGet, "/api/discover-campaigns?limit="+limit, token, "")
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("got status %d, want 400", rec.Code)
			}
			body := decodeErrorBody(t, rec)
			if body.Error.Code != "VALIDATION_ERROR" {
				t.Fatalf("got code %q, want VALIDATION_ERROR", body.Error.Code)
			}
			if len(body.Error.Details) != 1 || body.Error.Details[0].Field != "limit" {
				t.Fatalf("details should name limit: %+v", body.Error.Details)
			}
		})
	}
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/healthz", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
}
