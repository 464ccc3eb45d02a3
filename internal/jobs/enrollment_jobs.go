package jobs

import (
	"context"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/logger"
)

// CloseExpiredRounds cancels PENDING enrollments for recruiting rounds whose
// window has closed. CANCELLED is terminal, so a closed round never leaves
// undecided requests behind.
func (jr *JobRunner) CloseExpiredRounds() {
	jr.runWithRecovery("CloseExpiredRounds", func() {
		ctx := context.Background()
		now := time.Now()

		for _, schedule := range []domain.ScheduleType{domain.ScheduleTypeFirst, domain.ScheduleTypeSecond} {
			closeDate, err := jr.config.Recruiting.RoundClose(string(schedule))
			if err != nil {
				logger.Error("Failed to parse round close date", "schedule", schedule, "error", err)
				continue
			}
			if now.Before(closeDate) {
				continue
			}

			cancelled, err := jr.store.CancelPending(ctx, schedule)
			if err != nil {
				logger.Error("Failed to cancel pending enrollments", "schedule", schedule, "error", err)
				continue
			}
			if cancelled > 0 {
				logger.Info("Cancelled pending enrollments for closed round", "schedule", schedule, "count", cancelled)
			}
		}
	})
}
