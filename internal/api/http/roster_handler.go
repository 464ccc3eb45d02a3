package http

import (
	"net/http"

	"clubhub-backend/internal/service"
)

// RosterHandler serves the derived team roster view.
type RosterHandler struct {
	rosterSvc service.RosterService
}

func NewRosterHandler(rosterSvc service.RosterService) *RosterHandler {
	return &RosterHandler{rosterSvc: rosterSvc}
}

func (h *RosterHandler) Roster(w http.ResponseWriter, r *http.Request) {
	claims, err := ClaimsFromContext(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorEnvelope{Error: errorBody{Code: "UNAUTHENTICATED", Message: err.Error()}})
		return
	}

	teamRoster, err := h.rosterSvc.Roster(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, teamRoster)
}
