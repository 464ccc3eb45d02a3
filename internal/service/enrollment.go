package service

import (
	"context"
	"fmt"
	"time"

	"clubhub-backend/internal/config"
	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/repository"
)

type enrollmentService struct {
	enrollmentRepo repository.EnrollmentRepository
	ideaRepo       repository.IdeaRepository
	applicantRepo  repository.ApplicantRepository
	emailSvc       EmailService
	recruiting     config.RecruitingConfig
}

func NewEnrollmentService(
	enrollmentRepo repository.EnrollmentRepository,
	ideaRepo repository.IdeaRepository,
	applicantRepo repository.ApplicantRepository,
	emailSvc EmailService,
	recruiting config.RecruitingConfig,
) EnrollmentService {
	return &enrollmentService{
		enrollmentRepo: enrollmentRepo,
		ideaRepo:       ideaRepo,
		applicantRepo:  applicantRepo,
		emailSvc:       emailSvc,
		recruiting:     recruiting,
	}
}

func (s *enrollmentService) Determine(ctx context.Context, callerID, enrollmentID int32, decision domain.EnrollmentDecision) error {
	enr, err := s.enrollmentRepo.GetByID(ctx, enrollmentID)
	if err != nil {
		return err
	}

	idea, err := s.ideaRepo.GetByID(ctx, enr.IdeaID)
	if err != nil {
		return fmt.Errorf("failed to get idea: %w", err)
	}
	if idea.LeaderUserID != callerID {
		return &domain.ConflictError{Msg: "only the team leader can decide enrollments"}
	}
	if enr.Status != domain.EnrollmentStatusPending {
		return &domain.ConflictError{Msg: fmt.Sprintf("enrollment %d is already %s", enr.ID, enr.Status)}
	}

	switch decision {
	case domain.EnrollmentDecisionAccept:
		// Capacity is re-validated inside the repository transaction; the
		// acceptable flag the caller saw may be stale.
		if err := s.enrollmentRepo.Accept(ctx, enr); err != nil {
			return err
		}
	case domain.EnrollmentDecisionReject:
		if err := s.enrollmentRepo.UpdateStatus(ctx, enrollmentID, domain.EnrollmentStatusPending, domain.EnrollmentStatusRejected); err != nil {
			return err
		}
	default:
		return &domain.ValidationError{Msg: fmt.Sprintf("unknown decision: %s", decision)}
	}

	logger.Info("Enrollment determined",
		"enrollment_id", enrollmentID, "idea_id", enr.IdeaID, "decision", decision, "leader_id", callerID)

	applicant, err := s.applicantRepo.GetByID(ctx, enr.ApplicantUserID)
	if err == nil {
		_ = s.emailSvc.SendEnrollmentDecisionNotification(ctx, applicant.Email, applicant.Name, idea.Title, decision)
	}

	return nil
}

func (s *enrollmentService) Cancel(ctx context.Context, callerID, enrollmentID int32) error {
	enr, err := s.enrollmentRepo.GetByID(ctx, enrollmentID)
	if err != nil {
		return err
	}
	if enr.ApplicantUserID != callerID {
		return &domain.ConflictError{Msg: "only the original applicant can cancel an enrollment"}
	}

	if err := s.enrollmentRepo.UpdateStatus(ctx, enrollmentID, domain.EnrollmentStatusPending, domain.EnrollmentStatusCancelled); err != nil {
		return err
	}
	logger.Info("Enrollment cancelled", "enrollment_id", enrollmentID, "applicant_id", callerID)
	return nil
}

func (s *enrollmentService) RemoveMember(ctx context.Context, callerID, ideaID, memberID int32) error {
	idea, err := s.ideaRepo.GetByID(ctx, ideaID)
	if err != nil {
		return err
	}
	if idea.LeaderUserID != callerID {
		return &domain.ConflictError{Msg: "only the team leader can remove members"}
	}

	member, err := s.ideaRepo.GetMember(ctx, ideaID, memberID)
	if err != nil {
		return err
	}
	if member.Role == domain.MemberRoleCreator {
		return &domain.ConflictError{Msg: "the team creator cannot be removed"}
	}
	if member.Confirmed {
		return &domain.ConflictError{Msg: "confirmed members can only be removed through the admin path"}
	}

	if err := s.ideaRepo.RemoveMember(ctx, ideaID, memberID); err != nil {
		return err
	}
	logger.Info("Member removed from roster", "idea_id", ideaID, "member_id", memberID, "leader_id", callerID)
	return nil
}

func (s *enrollmentService) ListReceived(ctx context.Context, callerID int32, schedule domain.ScheduleType) ([]domain.EnrollmentRequest, error) {
	idea, err := s.ideaRepo.GetByUser(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if idea.LeaderUserID != callerID {
		return nil, &domain.ConflictError{Msg: "only the team leader can view received enrollments"}
	}
	return s.enrollmentRepo.ListByIdea(ctx, idea.ID, schedule)
}

func (s *enrollmentService) ListSent(ctx context.Context, callerID int32, schedule domain.ScheduleType) ([]domain.EnrollmentRequest, error) {
	return s.enrollmentRepo.ListByApplicant(ctx, callerID, schedule)
}

// Readabilities reports, per recruiting round, whether enrollment data for
// that round may be viewed yet. A round becomes readable once its window has
// opened; it stays readable after the window closes.
func (s *enrollmentService) Readabilities(ctx context.Context, callerID int32) (map[domain.ScheduleType]bool, error) {
	now := time.Now()
	result := make(map[domain.ScheduleType]bool, 2)
	for _, schedule := range []domain.ScheduleType{domain.ScheduleTypeFirst, domain.ScheduleTypeSecond} {
		open, err := s.recruiting.RoundOpen(string(schedule))
		if err != nil {
			return nil, err
		}
		result[schedule] = !now.Before(open)
	}
	return result, nil
}
