package service

import (
	"context"

	"github.com/bagdasarian/club-shop/internal/domain"
	"github.com/bagdasarian/club-shop/internal/repository"
)

type teamService struct {
	teamRepo repository.TeamRepository
}

// NewTeamService создает новый экземпляр TeamService
func NewTeamService(teamRepo repository.TeamRepository) TeamService {
	return &teamService{
		teamRepo: teamRepo,
	}
}

// CreateTeam создает команду; номер команды уникален
func (s *teamService) CreateTeam(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	if team.Number <= 0 {
		return nil, domain.NewValidationError("number must be a positive integer")
	}
	if team.StartDate.IsZero() {
		return nil, domain.NewValidationError("start_date is required")
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}

	return team, nil
}

func (s *teamService) GetTeam(ctx context.Context, id int64) (*domain.Team, error) {
	return s.teamRepo.GetByID(ctx, id)
}

func (s *teamService) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	return s.teamRepo.List(ctx)
}

// DeleteTeam удаляет команду без участников
func (s *teamService) DeleteTeam(ctx context.Context, id int64) error {
	return s.teamRepo.Delete(ctx, id)
}
