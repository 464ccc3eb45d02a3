package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type enrollmentRepository struct {
	db *sql.DB
}

func NewEnrollmentRepository(db *sql.DB) repository.EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

// enrollmentColumns joins the applicant's name and computes whether the
// target part still has open capacity at read time.
const enrollmentColumns = `e.id, e.applicant_user_id, a.name, e.idea_id, e.requested_part,
	e.schedule_type, e.status, e.message, e.created_on::text,
	(SELECT p.max_member_count > (SELECT COUNT(*) FROM idea_members m
	   WHERE m.idea_id = e.idea_id AND m.part = e.requested_part)
	 FROM idea_parts p WHERE p.idea_id = e.idea_id AND p.part = e.requested_part) AS acceptable`

func (r *enrollmentRepository) Create(ctx context.Context, enr *domain.EnrollmentRequest) error {
	query := `INSERT INTO enrollments (applicant_user_id, idea_id, requested_part, schedule_type, status, message, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		enr.ApplicantUserID, enr.IdeaID, enr.RequestedPart, enr.ScheduleType,
		domain.EnrollmentStatusPending, enr.Message, time.Now().Format("2006-01-02")).Scan(&enr.ID)
}

func (r *enrollmentRepository) GetByID(ctx context.Context, id int32) (*domain.EnrollmentRequest, error) {
	enr := &domain.EnrollmentRequest{}
	query := `SELECT ` + enrollmentColumns + `
	          FROM enrollments e JOIN applicants a ON a.id = e.applicant_user_id
	          WHERE e.id = $1`
	var acceptable sql.NullBool
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&enr.ID, &enr.ApplicantUserID, &enr.ApplicantName, &enr.IdeaID, &enr.RequestedPart,
		&enr.ScheduleType, &enr.Status, &enr.Message, &enr.CreatedOn, &acceptable)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	enr.Acceptable = acceptable.Valid && acceptable.Bool
	return enr, nil
}

func (r *enrollmentRepository) UpdateStatus(ctx context.Context, id int32, from, to domain.EnrollmentStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE enrollments SET status = $1 WHERE id = $2 AND status = $3`,
		to, id, from)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	var current domain.EnrollmentStatus
	err = r.db.QueryRowContext(ctx, `SELECT status FROM enrollments WHERE id = $1`, id).Scan(&current)
	if err == sql.ErrNoRows {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	return &domain.ConflictError{Msg: fmt.Sprintf("enrollment %d is %s, expected %s", id, current, from)}
}

func (r *enrollmentRepository) Accept(ctx context.Context, enr *domain.EnrollmentRequest) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Lock the part row so concurrent accepts for the same part serialize on
	// the capacity check.
	var maxMembers int32
	err = tx.QueryRowContext(ctx,
		`SELECT max_member_count FROM idea_parts WHERE idea_id = $1 AND part = $2 FOR UPDATE`,
		enr.IdeaID, enr.RequestedPart).Scan(&maxMembers)
	if err == sql.ErrNoRows {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}

	var current int32
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM idea_members WHERE idea_id = $1 AND part = $2`,
		enr.IdeaID, enr.RequestedPart).Scan(&current)
	if err != nil {
		return err
	}
	if current >= maxMembers {
		return &domain.CapacityExceededError{Part: enr.RequestedPart}
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE enrollments SET status = $1 WHERE id = $2 AND status = $3`,
		domain.EnrollmentStatusAccepted, enr.ID, domain.EnrollmentStatusPending)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &domain.ConflictError{Msg: fmt.Sprintf("enrollment %d is no longer pending", enr.ID)}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO idea_members (idea_id, user_id, part, role, confirmed)
		 VALUES ($1, $2, $3, $4, false)`,
		enr.IdeaID, enr.ApplicantUserID, enr.RequestedPart, domain.MemberRoleMember)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *enrollmentRepository) ListByIdea(ctx context.Context, ideaID int32, schedule domain.ScheduleType) ([]domain.EnrollmentRequest, error) {
	query := `SELECT ` + enrollmentColumns + `
	          FROM enrollments e JOIN applicants a ON a.id = e.applicant_user_id
	          WHERE e.idea_id = $1 AND e.schedule_type = $2 ORDER BY e.id`
	return r.list(ctx, query, ideaID, schedule)
}

func (r *enrollmentRepository) ListByApplicant(ctx context.Context, userID int32, schedule domain.ScheduleType) ([]domain.EnrollmentRequest, error) {
	query := `SELECT ` + enrollmentColumns + `
	          FROM enrollments e JOIN applicants a ON a.id = e.applicant_user_id
	          WHERE e.applicant_user_id = $1 AND e.schedule_type = $2 ORDER BY e.id`
	return r.list(ctx, query, userID, schedule)
}

func (r *enrollmentRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.EnrollmentRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []domain.EnrollmentRequest
	for rows.Next() {
		var enr domain.EnrollmentRequest
		var acceptable sql.NullBool
		if err := rows.Scan(&enr.ID, &enr.ApplicantUserID, &enr.ApplicantName, &enr.IdeaID, &enr.RequestedPart,
			&enr.ScheduleType, &enr.Status, &enr.Message, &enr.CreatedOn, &acceptable); err != nil {
			return nil, err
		}
		enr.Acceptable = acceptable.Valid && acceptable.Bool
		enrollments = append(enrollments, enr)
	}
	return enrollments, rows.Err()
}

func (r *enrollmentRepository) HasPending(ctx context.Context, userID, ideaID int32) (bool, error) {
	var count int32
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM enrollments WHERE applicant_user_id = $1 AND idea_id = $2 AND status = $3`,
		userID, ideaID, domain.EnrollmentStatusPending).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *enrollmentRepository) CancelPending(ctx context.Context, schedule domain.ScheduleType) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE enrollments SET status = $1 WHERE status = $2 AND schedule_type = $3`,
		domain.EnrollmentStatusCancelled, domain.EnrollmentStatusPending, schedule)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
