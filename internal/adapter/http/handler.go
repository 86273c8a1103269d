package httpadapter

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"viralink/internal/core/port"
)

// TokenVerifier validates a raw bearer token and returns the session it
// encodes. Implemented by the auth package's token manager.
type TokenVerifier interface {
	Verify(raw string) (port.Session, error)
}

// Pinger reports backend liveness. Implemented by pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler contains dependencies and routes. It is the inbound HTTP
// adapter: it decodes JSON requests, delegates to the service ports and
// encodes JSON responses. Routes are registered on a chi.Router.
type Handler struct {
	auth        port.AuthService
	profiles    port.ProfileService
	campaigns   port.CampaignService
	enrollments port.EnrollmentService
	dashboard   port.DashboardService
	verifier    TokenVerifier
	db          Pinger
	logger      *slog.Logger
	router      chi.Router
}

// Deps bundles the collaborators a Handler needs.
type Deps struct {
	Auth        port.AuthService
	Profiles    port.ProfileService
	Campaigns   port.CampaignService
	Enrollments port.EnrollmentService
	Dashboard   port.DashboardService
	Verifier    TokenVerifier
	DB          Pinger
	Logger      *slog.Logger
}

// NewHandler creates a handler with all routes configured.
func NewHandler(d Deps) *Handler {
	h := &Handler{
		auth:        d.Auth,
		profiles:    d.Profiles,
		campaigns:   d.Campaigns,
		enrollments: d.Enrollments,
		dashboard:   d.Dashboard,
		verifier:    d.Verifier,
		db:          d.DB,
		logger:      d.Logger,
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(h.recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Get("/track/{code}", h.handleTrack)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.handleRegister)
		r.Post("/auth/login", h.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(h.requireSession)
			r.Get("/auth/me", h.handleMe)
			r.Post("/campaigns", h.handleCreateCampaign)
			r.Get("/campaigns/{id}", h.handleGetCampaign)
			r.Patch("/campaigns/{id}", h.handleUpdateCampaignStatus)
			r.Get("/campaigns/{id}/promoters", h.handleCampaignPromoters)
			r.Get("/creator-campaigns", h.handleCreatorCampaigns)
			r.Get("/discover-campaigns", h.handleDiscoverCampaigns)
			r.Get("/promoter-campaigns", h.handlePromoterCampaigns)
			r.Post("/join-campaign", h.handleJoinCampaign)
			r.Get("/dashboard", h.handleDashboard)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// handleHealth pings the database and reports liveness.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		h.logger.Error("health ping failed", slog.Any("error", err))
		writeError(w, http.StatusServiceUnavailable, "UNAVAILABLE", "database unreachable", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
