package service

import (
	"context"

	"clubhub-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockApplicantRepo
type MockApplicantRepo struct {
	mock.Mock
}

func (m *MockApplicantRepo) GetByID(ctx context.Context, id int32) (*domain.Applicant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Applicant), args.Error(1)
}
func (m *MockApplicantRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Applicant, int32, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, int32(args.Int(1)), args.Error(2)
	}
	return args.Get(0).([]domain.Applicant), int32(args.Int(1)), args.Error(2)
}
func (m *MockApplicantRepo) UpdateStatus(ctx context.Context, id int32, from, to domain.ApprovalStatus) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}
func (m *MockApplicantRepo) ListWaitingBefore(ctx context.Context, cutoff string) ([]domain.Applicant, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Applicant), args.Error(1)
}

// MockEnrollmentRepo
type MockEnrollmentRepo struct {
	mock.Mock
}

func (m *MockEnrollmentRepo) Create(ctx context.Context, enr *domain.EnrollmentRequest) error {
	args := m.Called(ctx, enr)
	return args.Error(0)
}
func (m *MockEnrollmentRepo) GetByID(ctx context.Context, id int32) (*domain.EnrollmentRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EnrollmentRequest), args.Error(1)
}
func (m *MockEnrollmentRepo) UpdateStatus(ctx context.Context, id int32, from, to domain.EnrollmentStatus) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}
func (m *MockEnrollmentRepo) Accept(ctx context.Context, enr *domain.EnrollmentRequest) error {
	args := m.Called(ctx, enr)
	return args.Error(0)
}
func (m *MockEnrollmentRepo) ListByIdea(ctx context.Context, ideaID int32, schedule domain.ScheduleType) ([]domain.EnrollmentRequest, error) {
	args := m.Called(ctx, ideaID, schedule)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EnrollmentRequest), args.Error(1)
}
func (m *MockEnrollmentRepo) ListByApplicant(ctx context.Context, userID int32, schedule domain.ScheduleType) ([]domain.EnrollmentRequest, error) {
	args := m.Called(ctx, userID, schedule)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EnrollmentRequest), args.Error(1)
}
func (m *MockEnrollmentRepo) HasPending(ctx context.Context, userID, ideaID int32) (bool, error) {
	args := m.Called(ctx, userID, ideaID)
	return args.Bool(0), args.Error(1)
}
func (m *MockEnrollmentRepo) CancelPending(ctx context.Context, schedule domain.ScheduleType) (int64, error) {
	args := m.Called(ctx, schedule)
	return int64(args.Int(0)), args.Error(1)
}

// MockIdeaRepo
type MockIdeaRepo struct {
	mock.Mock
}

func (m *MockIdeaRepo) GetByID(ctx context.Context, id int32) (*domain.Idea, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Idea), args.Error(1)
}
func (m *MockIdeaRepo) GetByUser(ctx context.Context, userID int32) (*domain.Idea, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Idea), args.Error(1)
}
func (m *MockIdeaRepo) ListMembers(ctx context.Context, ideaID int32) ([]domain.MemberRecord, error) {
	args := m.Called(ctx, ideaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MemberRecord), args.Error(1)
}
func (m *MockIdeaRepo) GetMember(ctx context.Context, ideaID, userID int32) (*domain.MemberRecord, error) {
	args := m.Called(ctx, ideaID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MemberRecord), args.Error(1)
}
func (m *MockIdeaRepo) RemoveMember(ctx context.Context, ideaID, userID int32) error {
	args := m.Called(ctx, ideaID, userID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendApprovalNotification(ctx context.Context, email, name string) error {
	args := m.Called(ctx, email, name)
	return args.Error(0)
}
func (m *MockEmailService) SendRejectionNotification(ctx context.Context, email, name string) error {
	args := m.Called(ctx, email, name)
	return args.Error(0)
}
func (m *MockEmailService) SendEnrollmentDecisionNotification(ctx context.Context, email, name, ideaTitle string, decision domain.EnrollmentDecision) error {
	args := m.Called(ctx, email, name, ideaTitle, decision)
	return args.Error(0)
}
func (m *MockEmailService) SendScreeningReminder(ctx context.Context, adminEmail string, waitingCount int) error {
	args := m.Called(ctx, adminEmail, waitingCount)
	return args.Error(0)
}
