package service

import (
	"context"
	"fmt"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/repository"
)

type screeningService struct {
	applicantRepo repository.ApplicantRepository
	emailSvc      EmailService
}

func NewScreeningService(applicantRepo repository.ApplicantRepository, emailSvc EmailService) ScreeningService {
	return &screeningService{
		applicantRepo: applicantRepo,
		emailSvc:      emailSvc,
	}
}

func (s *screeningService) Approve(ctx context.Context, adminID, applicantID int32) error {
	applicant, err := s.applicantRepo.GetByID(ctx, applicantID)
	if err != nil {
		return fmt.Errorf("failed to get applicant: %w", err)
	}

	if err := s.applicantRepo.UpdateStatus(ctx, applicantID, domain.ApprovalStatusWaiting, domain.ApprovalStatusApproved); err != nil {
		return err
	}
	logger.Info("Applicant approved", "applicant_id", applicantID, "admin_id", adminID)

	// Notification is best effort; the decision already holds.
	_ = s.emailSvc.SendApprovalNotification(ctx, applicant.Email, applicant.Name)

	return nil
}

func (s *screeningService) Reject(ctx context.Context, adminID, applicantID int32) error {
	applicant, err := s.applicantRepo.GetByID(ctx, applicantID)
	if err != nil {
		return fmt.Errorf("failed to get applicant: %w", err)
	}

	if err := s.applicantRepo.UpdateStatus(ctx, applicantID, domain.ApprovalStatusWaiting, domain.ApprovalStatusRejected); err != nil {
		return err
	}
	logger.Info("Applicant rejected", "applicant_id", applicantID, "admin_id", adminID)

	_ = s.emailSvc.SendRejectionNotification(ctx, applicant.Email, applicant.Name)

	return nil
}

// Reset moves a rejected applicant back to WAITING. It is the only backward
// transition in the screening lifecycle and exists to correct erroneous
// rejections; no notification goes out for it.
func (s *screeningService) Reset(ctx context.Context, adminID, applicantID int32) error {
	if err := s.applicantRepo.UpdateStatus(ctx, applicantID, domain.ApprovalStatusRejected, domain.ApprovalStatusWaiting); err != nil {
		return err
	}
	logger.Info("Applicant decision reset", "applicant_id", applicantID, "admin_id", adminID)
	return nil
}

func (s *screeningService) ListApplicants(ctx context.Context, page, pageSize int32) ([]domain.Applicant, int32, error) {
	return s.applicantRepo.List(ctx, page, pageSize)
}
