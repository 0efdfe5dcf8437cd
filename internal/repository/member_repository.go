package repository

import (
	"context"

	"github.com/bagdasarian/club-shop/internal/domain"
	"github.com/shopspring/decimal"
)

type MemberRepository interface {
	Create(ctx context.Context, member *domain.TeamMember) error
	GetByID(ctx context.Context, id int64) (*domain.TeamMember, error)
	List(ctx context.Context) ([]*domain.TeamMember, error)
	Delete(ctx context.Context, id int64) error
	// AdjustBalance атомарно прибавляет delta к балансу и возвращает новое значение
	AdjustBalance(ctx context.Context, id int64, delta decimal.Decimal) (decimal.Decimal, error)
}
