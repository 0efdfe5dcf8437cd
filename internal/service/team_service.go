package service

import (
	"context"

	"github.com/bagdasarian/club-shop/internal/domain"
)

type TeamService interface {
	CreateTeam(ctx context.Context, team *domain.Team) (*domain.Team, error)
	GetTeam(ctx context.Context, id int64) (*domain.Team, error)
	ListTeams(ctx context.Context) ([]*domain.Team, error)
	DeleteTeam(ctx context.Context, id int64) error
}
