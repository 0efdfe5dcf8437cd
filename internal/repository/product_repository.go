package repository

import (
	"context"

	"github.com/bagdasarian/club-shop/internal/domain"
	"github.com/shopspring/decimal"
)

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	// LockPrices читает текущие цены с блокировкой строк до конца транзакции
	LockPrices(ctx context.Context, ids []int64) (map[int64]decimal.Decimal, error)
	UpdatePrice(ctx context.Context, id int64, price decimal.Decimal) error
}
