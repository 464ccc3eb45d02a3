package http

import (
	"context"
	"encoding/json"
	"net/http"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/service"
)

// EnrollmentHandler serves the enrollment and roster-member endpoints.
type EnrollmentHandler struct {
	enrollmentSvc service.EnrollmentService
}

func NewEnrollmentHandler(enrollmentSvc service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentSvc: enrollmentSvc}
}

type determineRequest struct {
	Decision domain.EnrollmentDecision `json:"decision"`
}

func (h *EnrollmentHandler) Determine(w http.ResponseWriter, r *http.Request) {
	claims, err := ClaimsFromContext(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorEnvelope{Error: errorBody{Code: "UNAUTHENTICATED", Message: err.Error()}})
		return
	}

	enrollmentID, err := pathInt32(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var body determineRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, &domain.ValidationError{Msg: "invalid request body"})
		return
	}
	if body.Decision != domain.EnrollmentDecisionAccept && body.Decision != domain.EnrollmentDecisionReject {
		writeError(w, &domain.ValidationError{Msg: "decision must be ACCEPT or REJECT"})
		return
	}

	if err := h.enrollmentSvc.Determine(r.Context(), claims.UserID, enrollmentID, body.Decision); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *EnrollmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	claims, err := ClaimsFromContext(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorEnvelope{Error: errorBody{Code: "UNAUTHENTICATED", Message: err.Error()}})
		return
	}

	enrollmentID, err := pathInt32(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.enrollmentSvc.Cancel(r.Context(), claims.UserID, enrollmentID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *EnrollmentHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	claims, err := ClaimsFromContext(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorEnvelope{Error: errorBody{Code: "UNAUTHENTICATED", Message: err.Error()}})
		return
	}

	ideaID, err := pathInt32(r, "ideaId")
	if err != nil {
		writeError(w, err)
		return
	}
	memberID, err := pathInt32(r, "memberId")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.enrollmentSvc.RemoveMember(r.Context(), claims.UserID, ideaID, memberID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *EnrollmentHandler) ListReceived(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.enrollmentSvc.ListReceived)
}

func (h *EnrollmentHandler) ListSent(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.enrollmentSvc.ListSent)
}

func (h *EnrollmentHandler) list(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, callerID int32, schedule domain.ScheduleType) ([]domain.EnrollmentRequest, error)) {
	claims, err := ClaimsFromContext(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorEnvelope{Error: errorBody{Code: "UNAUTHENTICATED", Message: err.Error()}})
		return
	}

	schedule, err := scheduleFromQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}

	enrollments, err := op(r.Context(), claims.UserID, schedule)
	if err != nil {
		writeError(w, err)
		return
	}
	if enrollments == nil {
		enrollments = []domain.EnrollmentRequest{}
	}
	writeJSON(w, http.StatusOK, enrollments)
}

func (h *EnrollmentHandler) Readabilities(w http.ResponseWriter, r *http.Request) {
	claims, err := ClaimsFromContext(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorEnvelope{Error: errorBody{Code: "UNAUTHENTICATED", Message: err.Error()}})
		return
	}

	readabilities, err := h.enrollmentSvc.Readabilities(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, readabilities)
}

func scheduleFromQuery(r *http.Request) (domain.ScheduleType, error) {
	raw := r.URL.Query().Get("scheduleType")
	switch domain.ScheduleType(raw) {
	case domain.ScheduleTypeFirst, domain.ScheduleTypeSecond:
		return domain.ScheduleType(raw), nil
	}
	return "", &domain.ValidationError{Msg: "scheduleType must be FIRST or SECOND"}
}
