package service

import (
	"context"
	"strings"

	"github.com/bagdasarian/club-shop/internal/domain"
	"github.com/bagdasarian/club-shop/internal/repository"
	"github.com/shopspring/decimal"
)

type memberService struct {
	memberRepo repository.MemberRepository
}

// NewMemberService создает новый экземпляр MemberService
func NewMemberService(memberRepo repository.MemberRepository) MemberService {
	return &memberService{
		memberRepo: memberRepo,
	}
}

// CreateMember создает участника с нулевым балансом.
// Баланс меняется только через заказы и платежи.
func (s *memberService) CreateMember(ctx context.Context, member *domain.TeamMember) (*domain.TeamMember, error) {
	member.Name = strings.TrimSpace(member.Name)
	if member.Name == "" {
		return nil, domain.NewValidationError("name is required")
	}
	member.Balance = decimal.Zero

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	return s.memberRepo.GetByID(ctx, member.ID)
}

func (s *memberService) GetMember(ctx context.Context, id int64) (*domain.TeamMember, error) {
	return s.memberRepo.GetByID(ctx, id)
}

func (s *memberService) ListMembers(ctx context.Context) ([]*domain.TeamMember, error) {
	return s.memberRepo.List(ctx)
}

// DeleteMember удаляет участника вместе с его заказами и платежами
func (s *memberService) DeleteMember(ctx context.Context, id int64) error {
	return s.memberRepo.Delete(ctx, id)
}
