package postgres

import (
	"database/sql"

	"clubhub-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ApplicantRepository
	repository.EnrollmentRepository
	repository.IdeaRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                   db,
		ApplicantRepository:  NewApplicantRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
		IdeaRepository:       NewIdeaRepository(db),
	}
}
