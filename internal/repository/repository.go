package repository

import (
	"context"

	"clubhub-backend/internal/domain"
)

type ApplicantRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Applicant, error)
	List(ctx context.Context, page, pageSize int32) ([]domain.Applicant, int32, error)
	// UpdateStatus transitions the applicant from one status to another. It
	// returns domain.ErrNotFound when no such applicant exists and a
	// domain.ConflictError when the applicant is not in the expected status.
	UpdateStatus(ctx context.Context, id int32, from, to domain.ApprovalStatus) error
	ListWaitingBefore(ctx context.Context, cutoff string) ([]domain.Applicant, error)
}

type EnrollmentRepository interface {
	Create(ctx context.Context, enr *domain.EnrollmentRequest) error
	GetByID(ctx context.Context, id int32) (*domain.EnrollmentRequest, error)
	UpdateStatus(ctx context.Context, id int32, from, to domain.EnrollmentStatus) error
	// Accept marks the enrollment ACCEPTED and adds the applicant to the
	// team's roster in a single transaction, holding a lock on the target
	// part while its remaining capacity is verified. It returns a
	// domain.CapacityExceededError when the part is already full.
	Accept(ctx context.Context, enr *domain.EnrollmentRequest) error
	ListByIdea(ctx context.Context, ideaID int32, schedule domain.ScheduleType) ([]domain.EnrollmentRequest, error)
	ListByApplicant(ctx context.Context, userID int32, schedule domain.ScheduleType) ([]domain.EnrollmentRequest, error)
	HasPending(ctx context.Context, userID, ideaID int32) (bool, error)
	CancelPending(ctx context.Context, schedule domain.ScheduleType) (int64, error)
}

type IdeaRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Idea, error)
	// GetByUser returns the idea the user currently belongs to, as leader or
	// member. domain.ErrNotFound when the user has no active team.
	GetByUser(ctx context.Context, userID int32) (*domain.Idea, error)
	ListMembers(ctx context.Context, ideaID int32) ([]domain.MemberRecord, error)
	GetMember(ctx context.Context, ideaID, userID int32) (*domain.MemberRecord, error)
	RemoveMember(ctx context.Context, ideaID, userID int32) error
}
