package service

import (
	"context"

	"github.com/bagdasarian/club-shop/internal/domain"
)

type PaymentService interface {
	CreatePayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	GetPayment(ctx context.Context, id int64) (*domain.Payment, error)
	ListPayments(ctx context.Context) ([]*domain.Payment, error)
	// CompletePayment переводит платеж в completed и зачисляет сумму на баланс.
	// Повторный вызов возвращает CompletionAlreadyDone и ничего не меняет.
	CompletePayment(ctx context.Context, id int64) (*domain.Payment, domain.CompletionOutcome, error)
}
