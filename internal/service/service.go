package service

import (
	"context"

	"clubhub-backend/internal/domain"
)

type ScreeningService interface {
	Approve(ctx context.Context, adminID, applicantID int32) error
	Reject(ctx context.Context, adminID, applicantID int32) error
	Reset(ctx context.Context, adminID, applicantID int32) error
	ListApplicants(ctx context.Context, page, pageSize int32) ([]domain.Applicant, int32, error)
}

type EnrollmentService interface {
	Determine(ctx context.Context, callerID, enrollmentID int32, decision domain.EnrollmentDecision) error
	Cancel(ctx context.Context, callerID, enrollmentID int32) error
	RemoveMember(ctx context.Context, callerID, ideaID, memberID int32) error
	ListReceived(ctx context.Context, callerID int32, schedule domain.ScheduleType) ([]domain.EnrollmentRequest, error)
	ListSent(ctx context.Context, callerID int32, schedule domain.ScheduleType) ([]domain.EnrollmentRequest, error)
	Readabilities(ctx context.Context, callerID int32) (map[domain.ScheduleType]bool, error)
}

type RosterService interface {
	Roster(ctx context.Context, callerID int32) (*domain.TeamRoster, error)
}

type EmailService interface {
	SendApprovalNotification(ctx context.Context, email, name string) error
	SendRejectionNotification(ctx context.Context, email, name string) error
	SendEnrollmentDecisionNotification(ctx context.Context, email, name, ideaTitle string, decision domain.EnrollmentDecision) error
	SendScreeningReminder(ctx context.Context, adminEmail string, waitingCount int) error
}
