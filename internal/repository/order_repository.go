package repository

import (
	"context"

	"github.com/bagdasarian/club-shop/internal/domain"
	"github.com/shopspring/decimal"
)

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error)
	Delete(ctx context.Context, id int64) error
	// RecalculateTotal пересчитывает кэшированную сумму заказа по текущим строкам
	RecalculateTotal(ctx context.Context, id int64) (decimal.Decimal, error)
	GetMemberID(ctx context.Context, id int64) (int64, error)
}

type OrderItemRepository interface {
	Create(ctx context.Context, item *domain.OrderItem) error
	// GetForUpdate блокирует строку до конца транзакции
	GetForUpdate(ctx context.Context, id int64) (*domain.OrderItem, error)
	ListByOrderID(ctx context.Context, orderID int64) ([]domain.OrderItem, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int) error
	Delete(ctx context.Context, id int64) error
}
