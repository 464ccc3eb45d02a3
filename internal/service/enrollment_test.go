package service

import (
	"context"
	"testing"

	"clubhub-backend/internal/config"
	"clubhub-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func pendingEnrollment() *domain.EnrollmentRequest {
	return &domain.EnrollmentRequest{
		ID:              1,
		ApplicantUserID: 300,
		ApplicantName:   "Park",
		IdeaID:          7,
		RequestedPart:   "SERVER",
		ScheduleType:    domain.ScheduleTypeFirst,
		Status:          domain.EnrollmentStatusPending,
	}
}

func ledIdea() *domain.Idea {
	return &domain.Idea{
		ID:           7,
		Title:        "Club Finder",
		LeaderUserID: 100,
		ScheduleType: domain.ScheduleTypeFirst,
		Parts:        []domain.IdeaPart{{Part: "SERVER", MaxMemberCount: 3}},
	}
}

func newEnrollmentFixture() (*MockEnrollmentRepo, *MockIdeaRepo, *MockApplicantRepo, *MockEmailService, EnrollmentService) {
	enrollmentRepo := new(MockEnrollmentRepo)
	ideaRepo := new(MockIdeaRepo)
	applicantRepo := new(MockApplicantRepo)
	emailSvc := new(MockEmailService)
	recruiting := config.RecruitingConfig{
		FirstRoundOpen:   "2020-01-01",
		FirstRoundClose:  "2020-01-20",
		SecondRoundOpen:  "2999-01-01",
		SecondRoundClose: "2999-01-20",
	}
	svc := NewEnrollmentService(enrollmentRepo, ideaRepo, applicantRepo, emailSvc, recruiting)
	return enrollmentRepo, ideaRepo, applicantRepo, emailSvc, svc
}

func TestEnrollmentService_Determine(t *testing.T) {
	ctx := context.Background()

	t.Run("Accept goes through the transactional path", func(t *testing.T) {
		enrollmentRepo, ideaRepo, applicantRepo, emailSvc, svc := newEnrollmentFixture()

		enr := pendingEnrollment()
		enrollmentRepo.On("GetByID", ctx, int32(1)).Return(enr, nil)
		ideaRepo.On("GetByID", ctx, int32(7)).Return(ledIdea(), nil)
		enrollmentRepo.On("Accept", ctx, enr).Return(nil)
		applicantRepo.On("GetByID", ctx, int32(300)).
			Return(&domain.Applicant{ID: 300, Name: "Park", Email: "park@club.dev"}, nil)
		emailSvc.On("SendEnrollmentDecisionNotification", ctx, "park@club.dev", "Park", "Club Finder", domain.EnrollmentDecisionAccept).Return(nil)

		err := svc.Determine(ctx, 100, 1, domain.EnrollmentDecisionAccept)
		assert.NoError(t, err)
		enrollmentRepo.AssertExpectations(t)
	})

	t.Run("Reject is a guarded status update", func(t *testing.T) {
		enrollmentRepo, ideaRepo, applicantRepo, emailSvc, svc := newEnrollmentFixture()

		enrollmentRepo.On("GetByID", ctx, int32(1)).Return(pendingEnrollment(), nil)
		ideaRepo.On("GetByID", ctx, int32(7)).Return(ledIdea(), nil)
		enrollmentRepo.On("UpdateStatus", ctx, int32(1), domain.EnrollmentStatusPending, domain.EnrollmentStatusRejected).Return(nil)
		applicantRepo.On("GetByID", ctx, int32(300)).
			Return(&domain.Applicant{ID: 300, Name: "Park", Email: "park@club.dev"}, nil)
		emailSvc.On("SendEnrollmentDecisionNotification", ctx, "park@club.dev", "Park", "Club Finder", domain.EnrollmentDecisionReject).Return(nil)

		assert.NoError(t, svc.Determine(ctx, 100, 1, domain.EnrollmentDecisionReject))
		enrollmentRepo.AssertNotCalled(t, "Accept", mock.Anything, mock.Anything)
	})

	t.Run("Only the leader decides", func(t *testing.T) {
		enrollmentRepo, ideaRepo, _, emailSvc, svc := newEnrollmentFixture()

		enrollmentRepo.On("GetByID", ctx, int32(1)).Return(pendingEnrollment(), nil)
		ideaRepo.On("GetByID", ctx, int32(7)).Return(ledIdea(), nil)

		err := svc.Determine(ctx, 999, 1, domain.EnrollmentDecisionAccept)
		assert.ErrorIs(t, err, domain.ErrConflict)
		enrollmentRepo.AssertNotCalled(t, "Accept", mock.Anything, mock.Anything)
		emailSvc.AssertNotCalled(t, "SendEnrollmentDecisionNotification",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Already decided enrollment conflicts", func(t *testing.T) {
		enrollmentRepo, ideaRepo, _, _, svc := newEnrollmentFixture()

		enr := pendingEnrollment()
		enr.Status = domain.EnrollmentStatusCancelled
		enrollmentRepo.On("GetByID", ctx, int32(1)).Return(enr, nil)
		ideaRepo.On("GetByID", ctx, int32(7)).Return(ledIdea(), nil)

		err := svc.Determine(ctx, 100, 1, domain.EnrollmentDecisionAccept)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("Full part surfaces capacity error", func(t *testing.T) {
		enrollmentRepo, ideaRepo, _, _, svc := newEnrollmentFixture()

		enr := pendingEnrollment()
		enrollmentRepo.On("GetByID", ctx, int32(1)).Return(enr, nil)
		ideaRepo.On("GetByID", ctx, int32(7)).Return(ledIdea(), nil)
		enrollmentRepo.On("Accept", ctx, enr).Return(&domain.CapacityExceededError{Part: "SERVER"})

		err := svc.Determine(ctx, 100, 1, domain.EnrollmentDecisionAccept)
		var cerr *domain.CapacityExceededError
		assert.ErrorAs(t, err, &cerr)
		assert.Equal(t, "SERVER", cerr.Part)
	})

	t.Run("Unknown decision", func(t *testing.T) {
		enrollmentRepo, ideaRepo, _, _, svc := newEnrollmentFixture()

		enrollmentRepo.On("GetByID", ctx, int32(1)).Return(pendingEnrollment(), nil)
		ideaRepo.On("GetByID", ctx, int32(7)).Return(ledIdea(), nil)

		err := svc.Determine(ctx, 100, 1, domain.EnrollmentDecision("MAYBE"))
		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestEnrollmentService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("Applicant cancels own request", func(t *testing.T) {
		enrollmentRepo, _, _, _, svc := newEnrollmentFixture()

		enrollmentRepo.On("GetByID", ctx, int32(1)).Return(pendingEnrollment(), nil)
		enrollmentRepo.On("UpdateStatus", ctx, int32(1), domain.EnrollmentStatusPending, domain.EnrollmentStatusCancelled).Return(nil)

		assert.NoError(t, svc.Cancel(ctx, 300, 1))
	})

	t.Run("Foreign request cannot be cancelled", func(t *testing.T) {
		enrollmentRepo, _, _, _, svc := newEnrollmentFixture()

		enrollmentRepo.On("GetByID", ctx, int32(1)).Return(pendingEnrollment(), nil)

		err := svc.Cancel(ctx, 999, 1)
		assert.ErrorIs(t, err, domain.ErrConflict)
		enrollmentRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestEnrollmentService_RemoveMember(t *testing.T) {
	ctx := context.Background()

	t.Run("Leader removes unconfirmed member", func(t *testing.T) {
		_, ideaRepo, _, _, svc := newEnrollmentFixture()

		ideaRepo.On("GetByID", ctx, int32(7)).Return(ledIdea(), nil)
		ideaRepo.On("GetMember", ctx, int32(7), int32(200)).
			Return(&domain.MemberRecord{IdeaID: 7, UserID: 200, Role: domain.MemberRoleMember, Confirmed: false}, nil)
		ideaRepo.On("RemoveMember", ctx, int32(7), int32(200)).Return(nil)

		assert.NoError(t, svc.RemoveMember(ctx, 100, 7, 200))
		ideaRepo.AssertExpectations(t)
	})

	t.Run("Creator cannot be removed", func(t *testing.T) {
		_, ideaRepo, _, _, svc := newEnrollmentFixture()

		ideaRepo.On("GetByID", ctx, int32(7)).Return(ledIdea(), nil)
		ideaRepo.On("GetMember", ctx, int32(7), int32(100)).
			Return(&domain.MemberRecord{IdeaID: 7, UserID: 100, Role: domain.MemberRoleCreator, Confirmed: true}, nil)

		err := svc.RemoveMember(ctx, 100, 7, 100)
		assert.ErrorIs(t, err, domain.ErrConflict)
		ideaRepo.AssertNotCalled(t, "RemoveMember", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Confirmed member is out of reach", func(t *testing.T) {
		_, ideaRepo, _, _, svc := newEnrollmentFixture()

		ideaRepo.On("GetByID", ctx, int32(7)).Return(ledIdea(), nil)
		ideaRepo.On("GetMember", ctx, int32(7), int32(200)).
			Return(&domain.MemberRecord{IdeaID: 7, UserID: 200, Role: domain.MemberRoleMember, Confirmed: true}, nil)

		err := svc.RemoveMember(ctx, 100, 7, 200)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("Only the leader removes", func(t *testing.T) {
		_, ideaRepo, _, _, svc := newEnrollmentFixture()

		ideaRepo.On("GetByID", ctx, int32(7)).Return(ledIdea(), nil)

		err := svc.RemoveMember(ctx, 999, 7, 200)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestEnrollmentService_Readabilities(t *testing.T) {
	ctx := context.Background()
	_, _, _, _, svc := newEnrollmentFixture()

	// First round opened in 2020, second opens far in the future.
	result, err := svc.Readabilities(ctx, 300)
	assert.NoError(t, err)
	assert.True(t, result[domain.ScheduleTypeFirst])
	assert.False(t, result[domain.ScheduleTypeSecond])
}
