package httpadapter

import (
	"net/http"

	"viralink/internal/core/port"
)

// handleRegister creates an identity and returns a session token. The
// role chosen here is permanent for the account.
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var in port.RegisterInput
	if err := decodeJSON(r, &in); err != nil {
		h.respondError(w, r, err)
		return
	}
	res, err := h.auth.Register(r.Context(), in)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

// handleLogin verifies credentials and returns a session token.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in port.LoginInput
	if err := decodeJSON(r, &in); err != nil {
		h.respondError(w, r, err)
		return
	}
	res, err := h.auth.Login(r.Context(), in)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleMe returns the caller's profile, creating it on first use.
func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "no active session", nil)
		return
	}
	profile, err := h.profiles.Ensure(r.Context(), session)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
