package service

import (
	"context"
	"fmt"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
	"clubhub-backend/internal/roster"
)

type rosterService struct {
	ideaRepo repository.IdeaRepository
}

func NewRosterService(ideaRepo repository.IdeaRepository) RosterService {
	return &rosterService{ideaRepo: ideaRepo}
}

func (s *rosterService) Roster(ctx context.Context, callerID int32) (*domain.TeamRoster, error) {
	idea, err := s.ideaRepo.GetByUser(ctx, callerID)
	if err != nil {
		return nil, err
	}

	members, err := s.ideaRepo.ListMembers(ctx, idea.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	return roster.Aggregate(idea, members), nil
}
