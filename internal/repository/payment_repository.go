package repository

import (
	"context"

	"github.com/bagdasarian/club-shop/internal/domain"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	List(ctx context.Context) ([]*domain.Payment, error)
	// MarkCompleted переводит pending -> completed; completed=false, если платеж уже был завершен
	MarkCompleted(ctx context.Context, id int64) (payment *domain.Payment, completed bool, err error)
}
