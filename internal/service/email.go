package service

import (
	"context"
	"fmt"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}

	logger.Debug("Email sent", "to", to, "subject", subject)
	return nil
}

func (s *emailService) SendApprovalNotification(ctx context.Context, email, name string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour club application has been approved. Welcome aboard!\n\nBest regards,\nThe Club Team", name)
	return s.send(email, name, "Your application has been approved", body)
}

func (s *emailService) SendRejectionNotification(ctx context.Context, email, name string) error {
	body := fmt.Sprintf("Hello %s,\n\nWe are sorry to let you know that your club application was not accepted this time.\n\nBest regards,\nThe Club Team", name)
	return s.send(email, name, "Update on your application", body)
}

func (s *emailService) SendEnrollmentDecisionNotification(ctx context.Context, email, name, ideaTitle string, decision domain.EnrollmentDecision) error {
	var body string
	if decision == domain.EnrollmentDecisionAccept {
		body = fmt.Sprintf("Hello %s,\n\nYour request to join the team '%s' was accepted.\n\nBest regards,\nThe Club Team", name, ideaTitle)
	} else {
		body = fmt.Sprintf("Hello %s,\n\nYour request to join the team '%s' was declined.\n\nBest regards,\nThe Club Team", name, ideaTitle)
	}
	return s.send(email, name, fmt.Sprintf("Decision on your enrollment for %s", ideaTitle), body)
}

func (s *emailService) SendScreeningReminder(ctx context.Context, adminEmail string, waitingCount int) error {
	body := fmt.Sprintf("There are %d applicants waiting for a screening decision. Please review them in the admin dashboard.", waitingCount)
	return s.send(adminEmail, "", "Applicants awaiting review", body)
}
