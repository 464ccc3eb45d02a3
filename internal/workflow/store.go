// Package workflow holds the client-side controllers behind the admin and
// team dashboards. Each controller keeps a cached projection of the remote
// store and mutates it only after the store confirms a decision; the store
// stays the single source of truth for conflicts and capacity.
package workflow

import (
	"context"

	"clubhub-backend/internal/domain"
)

// Session is the identity a controller acts under. It is injected at
// construction so ownership and role preconditions stay testable.
type Session struct {
	UserID int32
	Roles  []string
}

// ScreeningStore is the slice of the remote store the screening controller
// consumes.
type ScreeningStore interface {
	ListApplicants(ctx context.Context, page, size int32) ([]domain.Applicant, int32, error)
	Approve(ctx context.Context, applicantID int32) error
	Reject(ctx context.Context, applicantID int32) error
	Reset(ctx context.Context, applicantID int32) error
}

// EnrollmentStore is the slice of the remote store the enrollment controller
// consumes.
type EnrollmentStore interface {
	Roster(ctx context.Context) (*domain.TeamRoster, error)
	ListReceived(ctx context.Context, schedule domain.ScheduleType) ([]domain.EnrollmentRequest, error)
	ListSent(ctx context.Context, schedule domain.ScheduleType) ([]domain.EnrollmentRequest, error)
	Readabilities(ctx context.Context) (map[domain.ScheduleType]bool, error)
	Determine(ctx context.Context, enrollmentID int32, decision domain.EnrollmentDecision) error
	Cancel(ctx context.Context, enrollmentID int32) error
	RemoveMember(ctx context.Context, ideaID, memberID int32) error
}
