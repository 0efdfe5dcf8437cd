package service

import (
	"context"

	"github.com/bagdasarian/club-shop/internal/domain"
)

type OrderService interface {
	// CreateOrder атомарно создает заказ со строками и списывает сумму с баланса участника
	CreateOrder(ctx context.Context, memberID int64, lines []domain.NewOrderLine) (*domain.Order, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error)
	AddItem(ctx context.Context, orderID int64, line domain.NewOrderLine) (*domain.Order, error)
	UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) (*domain.Order, error)
	DeleteItem(ctx context.Context, itemID int64) (*domain.Order, error)
	// DeleteOrder возвращает участнику стоимость всех строк и удаляет заказ
	DeleteOrder(ctx context.Context, id int64) error
}
