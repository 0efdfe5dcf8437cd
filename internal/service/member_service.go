package service

import (
	"context"

	"github.com/bagdasarian/club-shop/internal/domain"
)

type MemberService interface {
	CreateMember(ctx context.Context, member *domain.TeamMember) (*domain.TeamMember, error)
	GetMember(ctx context.Context, id int64) (*domain.TeamMember, error)
	ListMembers(ctx context.Context) ([]*domain.TeamMember, error)
	DeleteMember(ctx context.Context, id int64) error
}
