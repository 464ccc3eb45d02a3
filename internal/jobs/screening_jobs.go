package jobs

import (
	"context"
	"time"

	"clubhub-backend/internal/logger"
)

// SendScreeningReminders mails the configured admins when applicants have
// been WAITING longer than the configured number of days.
func (jr *JobRunner) SendScreeningReminders() {
	jr.runWithRecovery("SendScreeningReminders", func() {
		ctx := context.Background()

		cutoff := time.Now().AddDate(0, 0, -jr.config.Screening.ReminderAfterDays).Format("2006-01-02")
		waiting, err := jr.store.ListWaitingBefore(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to list waiting applicants", "error", err)
			return
		}
		if len(waiting) == 0 {
			return
		}

		logger.Info("Applicants awaiting review past the reminder threshold", "count", len(waiting), "cutoff", cutoff)
		for _, adminEmail := range jr.config.Screening.AdminEmails {
			if err := jr.emailSvc.SendScreeningReminder(ctx, adminEmail, len(waiting)); err != nil {
				logger.Error("Failed to send screening reminder", "admin_email", adminEmail, "error", err)
			}
		}
	})
}
