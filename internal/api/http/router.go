package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires the REST surface of the store.
func NewRouter(
	auth *AuthMiddleware,
	adminHandler *AdminHandler,
	enrollmentHandler *EnrollmentHandler,
	rosterHandler *RosterHandler,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestLogger)
	r.Use(mux.MiddlewareFunc(auth.Authenticate))

	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(mux.MiddlewareFunc(auth.RequireAdmin))
	admin.HandleFunc("/users", adminHandler.ListApplicants).Methods(http.MethodGet)
	admin.HandleFunc("/{userId}/approve", adminHandler.Approve).Methods(http.MethodPost)
	admin.HandleFunc("/{userId}/reject", adminHandler.Reject).Methods(http.MethodPost)
	admin.HandleFunc("/{userId}/reset", adminHandler.Reset).Methods(http.MethodPost)

	r.HandleFunc("/ideas/roster", rosterHandler.Roster).Methods(http.MethodGet)
	r.HandleFunc("/ideas/{ideaId}/members/{memberId}", enrollmentHandler.RemoveMember).Methods(http.MethodDelete)

	r.HandleFunc("/enrollments/received", enrollmentHandler.ListReceived).Methods(http.MethodGet)
	r.HandleFunc("/enrollments/sent/readabilities", enrollmentHandler.Readabilities).Methods(http.MethodGet)
	r.HandleFunc("/enrollments/sent", enrollmentHandler.ListSent).Methods(http.MethodGet)
	r.HandleFunc("/enrollments/{id}/determine", enrollmentHandler.Determine).Methods(http.MethodPost)
	r.HandleFunc("/enrollments/{id}", enrollmentHandler.Cancel).Methods(http.MethodDelete)

	return r
}
