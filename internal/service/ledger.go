package service

import (
	"context"

	"github.com/bagdasarian/club-shop/internal/domain"
	"github.com/bagdasarian/club-shop/internal/repository"
	"github.com/sirupsen/logrus"
)

// Ledger переносит изменения строк заказов на баланс участника.
// Apply вызывается внутри транзакции, изменившей строку.
type Ledger struct {
	memberRepo repository.MemberRepository
	log        logrus.FieldLogger
}

func NewLedger(memberRepo repository.MemberRepository, log logrus.FieldLogger) *Ledger {
	return &Ledger{memberRepo: memberRepo, log: log}
}

func (l *Ledger) Apply(ctx context.Context, event domain.OrderItemEvent) error {
	delta := event.BalanceDelta()
	if delta.IsZero() {
		return nil
	}

	balance, err := l.memberRepo.AdjustBalance(ctx, event.MemberID, delta)
	if err != nil {
		return err
	}

	l.log.WithFields(logrus.Fields{
		"member_id": event.MemberID,
		"event":     event.Kind,
		"delta":     delta.StringFixed(2),
		"balance":   balance.StringFixed(2),
	}).Debug("balance adjusted")

	return nil
}
