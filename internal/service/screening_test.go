package service

import (
	"context"
	"errors"
	"testing"

	"clubhub-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func waitingApplicant() *domain.Applicant {
	return &domain.Applicant{
		ID:             1,
		Name:           "Kim",
		Email:          "kim@club.dev",
		Generation:     12,
		Part:           "SERVER",
		ApprovalStatus: domain.ApprovalStatusWaiting,
		CreatedOn:      "2026-03-02",
	}
}

func TestScreeningService_Approve(t *testing.T) {
	ctx := context.Background()

	t.Run("Success sends notification", func(t *testing.T) {
		applicantRepo := new(MockApplicantRepo)
		emailSvc := new(MockEmailService)
		svc := NewScreeningService(applicantRepo, emailSvc)

		applicantRepo.On("GetByID", ctx, int32(1)).Return(waitingApplicant(), nil)
		applicantRepo.On("UpdateStatus", ctx, int32(1), domain.ApprovalStatusWaiting, domain.ApprovalStatusApproved).Return(nil)
		emailSvc.On("SendApprovalNotification", ctx, "kim@club.dev", "Kim").Return(nil)

		err := svc.Approve(ctx, 99, 1)
		assert.NoError(t, err)
		applicantRepo.AssertExpectations(t)
		emailSvc.AssertExpectations(t)
	})

	t.Run("Email failure does not undo the decision", func(t *testing.T) {
		applicantRepo := new(MockApplicantRepo)
		emailSvc := new(MockEmailService)
		svc := NewScreeningService(applicantRepo, emailSvc)

		applicantRepo.On("GetByID", ctx, int32(1)).Return(waitingApplicant(), nil)
		applicantRepo.On("UpdateStatus", ctx, int32(1), domain.ApprovalStatusWaiting, domain.ApprovalStatusApproved).Return(nil)
		emailSvc.On("SendApprovalNotification", ctx, "kim@club.dev", "Kim").Return(errors.New("smtp down"))

		assert.NoError(t, svc.Approve(ctx, 99, 1))
	})

	t.Run("Conflict from a lost race propagates", func(t *testing.T) {
		applicantRepo := new(MockApplicantRepo)
		emailSvc := new(MockEmailService)
		svc := NewScreeningService(applicantRepo, emailSvc)

		applicantRepo.On("GetByID", ctx, int32(1)).Return(waitingApplicant(), nil)
		applicantRepo.On("UpdateStatus", ctx, int32(1), domain.ApprovalStatusWaiting, domain.ApprovalStatusApproved).
			Return(&domain.ConflictError{Msg: "applicant 1 is REJECTED, expected WAITING"})

		err := svc.Approve(ctx, 99, 1)
		assert.ErrorIs(t, err, domain.ErrConflict)
		emailSvc.AssertNotCalled(t, "SendApprovalNotification", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown applicant", func(t *testing.T) {
		applicantRepo := new(MockApplicantRepo)
		emailSvc := new(MockEmailService)
		svc := NewScreeningService(applicantRepo, emailSvc)

		applicantRepo.On("GetByID", ctx, int32(404)).Return(nil, domain.ErrNotFound)

		err := svc.Approve(ctx, 99, 404)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestScreeningService_Reject(t *testing.T) {
	ctx := context.Background()
	applicantRepo := new(MockApplicantRepo)
	emailSvc := new(MockEmailService)
	svc := NewScreeningService(applicantRepo, emailSvc)

	applicantRepo.On("GetByID", ctx, int32(1)).Return(waitingApplicant(), nil)
	applicantRepo.On("UpdateStatus", ctx, int32(1), domain.ApprovalStatusWaiting, domain.ApprovalStatusRejected).Return(nil)
	emailSvc.On("SendRejectionNotification", ctx, "kim@club.dev", "Kim").Return(nil)

	assert.NoError(t, svc.Reject(ctx, 99, 1))
	applicantRepo.AssertExpectations(t)
	emailSvc.AssertExpectations(t)
}

func TestScreeningService_Reset(t *testing.T) {
	ctx := context.Background()

	t.Run("Rejected goes back to waiting, silently", func(t *testing.T) {
		applicantRepo := new(MockApplicantRepo)
		emailSvc := new(MockEmailService)
		svc := NewScreeningService(applicantRepo, emailSvc)

		applicantRepo.On("UpdateStatus", ctx, int32(1), domain.ApprovalStatusRejected, domain.ApprovalStatusWaiting).Return(nil)

		assert.NoError(t, svc.Reset(ctx, 99, 1))
		emailSvc.AssertNotCalled(t, "SendApprovalNotification", mock.Anything, mock.Anything, mock.Anything)
		emailSvc.AssertNotCalled(t, "SendRejectionNotification", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Waiting applicant cannot be reset", func(t *testing.T) {
		applicantRepo := new(MockApplicantRepo)
		svc := NewScreeningService(applicantRepo, new(MockEmailService))

		applicantRepo.On("UpdateStatus", ctx, int32(1), domain.ApprovalStatusRejected, domain.ApprovalStatusWaiting).
			Return(&domain.ConflictError{Msg: "applicant 1 is WAITING, expected REJECTED"})

		err := svc.Reset(ctx, 99, 1)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}
