package postgres

import (
	"context"
	"database/sql"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type ideaRepository struct {
	db *sql.DB
}

func NewIdeaRepository(db *sql.DB) repository.IdeaRepository {
	return &ideaRepository{db: db}
}

func (r *ideaRepository) GetByID(ctx context.Context, id int32) (*domain.Idea, error) {
	idea := &domain.Idea{}
	query := `SELECT id, title, leader_user_id, schedule_type, created_on::text FROM ideas WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&idea.ID, &idea.Title, &idea.LeaderUserID, &idea.ScheduleType, &idea.CreatedOn)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadParts(ctx, idea); err != nil {
		return nil, err
	}
	return idea, nil
}

func (r *ideaRepository) GetByUser(ctx context.Context, userID int32) (*domain.Idea, error) {
	idea := &domain.Idea{}
	query := `SELECT i.id, i.title, i.leader_user_id, i.schedule_type, i.created_on::text
	          FROM ideas i JOIN idea_members m ON m.idea_id = i.id
	          WHERE m.user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&idea.ID, &idea.Title, &idea.LeaderUserID, &idea.ScheduleType, &idea.CreatedOn)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadParts(ctx, idea); err != nil {
		return nil, err
	}
	return idea, nil
}

func (r *ideaRepository) loadParts(ctx context.Context, idea *domain.Idea) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT part, max_member_count FROM idea_parts WHERE idea_id = $1 ORDER BY position`, idea.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.IdeaPart
		if err := rows.Scan(&p.Part, &p.MaxMemberCount); err != nil {
			return err
		}
		idea.Parts = append(idea.Parts, p)
	}
	return rows.Err()
}

func (r *ideaRepository) ListMembers(ctx context.Context, ideaID int32) ([]domain.MemberRecord, error) {
	query := `SELECT m.idea_id, m.user_id, a.name, m.part, m.role, m.confirmed
	          FROM idea_members m JOIN applicants a ON a.id = m.user_id
	          WHERE m.idea_id = $1 ORDER BY m.created_on, m.user_id`
	rows, err := r.db.QueryContext(ctx, query, ideaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.MemberRecord
	for rows.Next() {
		var m domain.MemberRecord
		if err := rows.Scan(&m.IdeaID, &m.UserID, &m.Name, &m.Part, &m.Role, &m.Confirmed); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *ideaRepository) GetMember(ctx context.Context, ideaID, userID int32) (*domain.MemberRecord, error) {
	m := &domain.MemberRecord{}
	query := `SELECT m.idea_id, m.user_id, a.name, m.part, m.role, m.confirmed
	          FROM idea_members m JOIN applicants a ON a.id = m.user_id
	          WHERE m.idea_id = $1 AND m.user_id = $2`
	err := r.db.QueryRowContext(ctx, query, ideaID, userID).Scan(
		&m.IdeaID, &m.UserID, &m.Name, &m.Part, &m.Role, &m.Confirmed)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *ideaRepository) RemoveMember(ctx context.Context, ideaID, userID int32) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM idea_members WHERE idea_id = $1 AND user_id = $2 AND role = $3 AND confirmed = false`,
		ideaID, userID, domain.MemberRoleMember)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
