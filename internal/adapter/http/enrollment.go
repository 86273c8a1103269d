package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"viralink/internal/core/domain"
)

// handleJoinCampaign enrolls the calling promoter in a campaign and
// returns the tracking link. Joining a campaign twice returns the
// original enrollment instead of an error.
func (h *Handler) handleJoinCampaign(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "no active session", nil)
		return
	}
	var in struct {
		CampaignID string `json:"campaignId"`
	}
	if err := decodeJSON(r, &in); err != nil {
		h.respondError(w, r, err)
		return
	}
	campaignID, err := uuid.Parse(in.CampaignID)
	if err != nil {
		h.respondError(w, r, domain.Invalid("campaignId", "campaignId must be a valid UUID"))
		return
	}
	result, err := h.enrollments.Join(r.Context(), session, campaignID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	status := http.StatusCreated
	if result.AlreadyJoined {
		status = http.StatusOK
	}
	writeJSON(w, status, result)
}

// handlePromoterCampaigns lists the caller's enrollments with the
// campaigns they belong to.
func (h *Handler) handlePromoterCampaigns(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "no active session", nil)
		return
	}
	list, err := h.enrollments.ListMine(r.Context(), session)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// handleTrack resolves a tracking code, records the click and redirects
// to the promoted content. Unknown codes return 404; everything else is
// a redirect so the visitor never sees an error page for a paused
// campaign.
func (h *Handler) handleTrack(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	target, err := h.enrollments.Track(r.Context(), code)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}
