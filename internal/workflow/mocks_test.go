package workflow

import (
	"context"

	"clubhub-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockScreeningStore
type MockScreeningStore struct {
	mock.Mock
}

func (m *MockScreeningStore) ListApplicants(ctx context.Context, page, size int32) ([]domain.Applicant, int32, error) {
	args := m.Called(ctx, page, size)
	if args.Get(0) == nil {
		return nil, int32(args.Int(1)), args.Error(2)
	}
	return args.Get(0).([]domain.Applicant), int32(args.Int(1)), args.Error(2)
}
func (m *MockScreeningStore) Approve(ctx context.Context, applicantID int32) error {
	args := m.Called(ctx, applicantID)
	return args.Error(0)
}
func (m *MockScreeningStore) Reject(ctx context.Context, applicantID int32) error {
	args := m.Called(ctx, applicantID)
	return args.Error(0)
}
func (m *MockScreeningStore) Reset(ctx context.Context, applicantID int32) error {
	args := m.Called(ctx, applicantID)
	return args.Error(0)
}

// MockEnrollmentStore
type MockEnrollmentStore struct {
	mock.Mock
}

func (m *MockEnrollmentStore) Roster(ctx context.Context) (*domain.TeamRoster, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamRoster), args.Error(1)
}
func (m *MockEnrollmentStore) ListReceived(ctx context.Context, schedule domain.ScheduleType) ([]domain.EnrollmentRequest, error) {
	args := m.Called(ctx, schedule)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EnrollmentRequest), args.Error(1)
}
func (m *MockEnrollmentStore) ListSent(ctx context.Context, schedule domain.ScheduleType) ([]domain.EnrollmentRequest, error) {
	args := m.Called(ctx, schedule)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EnrollmentRequest), args.Error(1)
}
func (m *MockEnrollmentStore) Readabilities(ctx context.Context) (map[domain.ScheduleType]bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.ScheduleType]bool), args.Error(1)
}
func (m *MockEnrollmentStore) Determine(ctx context.Context, enrollmentID int32, decision domain.EnrollmentDecision) error {
	args := m.Called(ctx, enrollmentID, decision)
	return args.Error(0)
}
func (m *MockEnrollmentStore) Cancel(ctx context.Context, enrollmentID int32) error {
	args := m.Called(ctx, enrollmentID)
	return args.Error(0)
}
func (m *MockEnrollmentStore) RemoveMember(ctx context.Context, ideaID, memberID int32) error {
	args := m.Called(ctx, ideaID, memberID)
	return args.Error(0)
}
