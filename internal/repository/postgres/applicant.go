package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type applicantRepository struct {
	db *sql.DB
}

func NewApplicantRepository(db *sql.DB) repository.ApplicantRepository {
	return &applicantRepository{db: db}
}

func (r *applicantRepository) GetByID(ctx context.Context, id int32) (*domain.Applicant, error) {
	a := &domain.Applicant{}
	query := `SELECT id, name, email, generation, part, phone, school, approval_status, created_on::text
	          FROM applicants WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.Name, &a.Email, &a.Generation, &a.Part, &a.Phone, &a.School, &a.ApprovalStatus, &a.CreatedOn)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *applicantRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Applicant, int32, error) {
	var total int32
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM applicants`).Scan(&total); err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageSize

	query := `SELECT id, name, email, generation, part, phone, school, approval_status, created_on::text
	          FROM applicants ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var applicants []domain.Applicant
	for rows.Next() {
		var a domain.Applicant
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Generation, &a.Part, &a.Phone, &a.School, &a.ApprovalStatus, &a.CreatedOn); err != nil {
			return nil, 0, err
		}
		applicants = append(applicants, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return applicants, total, nil
}

func (r *applicantRepository) UpdateStatus(ctx context.Context, id int32, from, to domain.ApprovalStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE applicants SET approval_status = $1 WHERE id = $2 AND approval_status = $3`,
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

	// Zero rows: either the applicant is gone or another admin got there first.
	var current domain.ApprovalStatus
	err = r.db.QueryRowContext(ctx, `SELECT approval_status FROM applicants WHERE id = $1`, id).Scan(&current)
	if err == sql.ErrNoRows {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	return &domain.ConflictError{Msg: fmt.Sprintf("applicant %d is %s, expected %s", id, current, from)}
}

func (r *applicantRepository) ListWaitingBefore(ctx context.Context, cutoff string) ([]domain.Applicant, error) {
	query := `SELECT id, name, email, generation, part, phone, school, approval_status, created_on::text
	          FROM applicants WHERE approval_status = $1 AND created_on < $2 ORDER BY created_on`
	rows, err := r.db.QueryContext(ctx, query, domain.ApprovalStatusWaiting, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applicants []domain.Applicant
	for rows.Next() {
		var a domain.Applicant
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Generation, &a.Part, &a.Phone, &a.School, &a.ApprovalStatus, &a.CreatedOn); err != nil {
			return nil, err
		}
		applicants = append(applicants, a)
	}
	return applicants, rows.Err()
}
