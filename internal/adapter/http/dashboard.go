package httpadapter

import "net/http"

// handleDashboard returns the role-specific summary for the caller.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "no active session", nil)
		return
	}
	summary, err := h.dashboard.Summary(r.Context(), session)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
