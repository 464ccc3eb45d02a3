package http

import (
	"context"
	"net/http"
	"strconv"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/service"

	"github.com/gorilla/mux"
)

// AdminHandler serves the admin screening endpoints.
type AdminHandler struct {
	screeningSvc service.ScreeningService
}

func NewAdminHandler(screeningSvc service.ScreeningService) *AdminHandler {
	return &AdminHandler{screeningSvc: screeningSvc}
}

type applicantPageResponse struct {
	Applicants []domain.Applicant `json:"applicants"`
	Total      int32              `json:"total"`
	Page       int32              `json:"page"`
	PageSize   int32              `json:"page_size"`
}

func (h *AdminHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.screeningSvc.Approve)
}

func (h *AdminHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.screeningSvc.Reject)
}

func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.screeningSvc.Reset)
}

func (h *AdminHandler) decide(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, adminID, applicantID int32) error) {
	claims, err := ClaimsFromContext(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorEnvelope{Error: errorBody{Code: "UNAUTHENTICATED", Message: err.Error()}})
		return
	}

	applicantID, err := pathInt32(r, "userId")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := op(r.Context(), claims.UserID, applicantID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *AdminHandler) ListApplicants(w http.ResponseWriter, r *http.Request) {
	page := queryInt32(r, "page", 1)
	size := queryInt32(r, "size", 10)

	applicants, total, err := h.screeningSvc.ListApplicants(r.Context(), page, size)
	if err != nil {
		writeError(w, err)
		return
	}
	if applicants == nil {
		applicants = []domain.Applicant{}
	}

	writeJSON(w, http.StatusOK, applicantPageResponse{
		Applicants: applicants,
		Total:      total,
		Page:       page,
		PageSize:   size,
	})
}

func queryInt32(r *http.Request, name string, fallback int32) int32 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v < 1 {
		return fallback
	}
	return int32(v)
}

func pathInt32(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, &domain.ValidationError{Msg: "invalid " + name}
	}
	return int32(v), nil
}
