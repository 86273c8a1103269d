package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"viralink/internal/core/domain"
	"viralink/internal/core/port"
)

// maxLimit caps the limit query parameter; an explicit limit must be in
// [1, maxLimit], absent means unbounded.
const maxLimit = 100

// handleCreateCampaign stores a new campaign for a creator caller.
// Validation failures are reported with field-level detail.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "no active session", nil)
		return
	}
	var in port.CreateCampaignInput
	if err := decodeJSON(r, &in); err != nil {
		h.respondError(w, r, err)
		return
	}
	campaign, err := h.campaigns.Create(r.Context(), session, in)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, campaign)
}

// handleGetCampaign returns a single campaign owned by the caller.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "no active session", nil)
		return
	}
	id, err := campaignIDParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	campaign, err := h.campaigns.Get(r.Context(), session, id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

// handleUpdateCampaignStatus toggles an owned campaign between active
// and paused.
func (h *Handler) handleUpdateCampaignStatus(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "no active session", nil)
		return
	}
	id, err := campaignIDParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var in struct {
		Status string `json:"status"`
	}
	if err = decodeJSON(r, &in); err != nil {
		h.respondError(w, r, err)
		return
	}
	campaign, err := h.campaigns.UpdateStatus(r.Context(), session, id, in.Status)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

// handleCampaignPromoters lists the enrollments of an owned campaign.
func (h *Handler) handleCampaignPromoters(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "no active session", nil)
		return
	}
	id, err := campaignIDParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	promoters, err := h.campaigns.Promoters(r.Context(), session, id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, promoters)
}

// handleCreatorCampaigns lists the caller's campaigns with derived
// aggregates.
func (h *Handler) handleCreatorCampaigns(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "no active session", nil)
		return
	}
	filter, err := filterFromQuery(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	list, err := h.campaigns.ListMine(r.Context(), session, filter)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// handleDiscoverCampaigns lists active campaigns not owned by the
// caller.
func (h *Handler) handleDiscoverCampaigns(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "no active session", nil)
		return
	}
	filter, err := filterFromQuery(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	list, err := h.campaigns.Discover(r.Context(), session, filter)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func campaignIDParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, domain.Invalid("id", "id must be a valid UUID")
	}
	return id, nil
}

// filterFromQuery parses the common status/limit/offset listing
// parameters. Ranges are checked here, at the only place that can tell
// an absent limit from an explicit zero.
func filterFromQuery(r *http.Request) (port.CampaignFilter, error) {
	var f port.CampaignFilter
	q := r.URL.Query()

	if s := q.Get("status"); s != "" {
		status, ok := domain.ParseCampaignStatus(s)
		if !ok {
			return f, domain.Invalid("status", "status must be one of active, paused, completed")
		}
		f.Status = &status
	}
	if s := q.Get("limit"); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil || limit < 1 || limit > maxLimit {
			return f, domain.Invalid("limit", "limit must be an integer between 1 and 100")
		}
		f.Limit = limit
	}
	if s := q.Get("offset"); s != "" {
		offset, err := strconv.Atoi(s)
		if err != nil || offset < 0 {
			return f, domain.Invalid("offset", "offset must be a non-negative integer")
		}
		f.Offset = offset
	}
	return f, nil
}
