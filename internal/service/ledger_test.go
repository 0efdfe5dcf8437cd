package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bagdasarian/club-shop/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLedger_Apply(t *testing.T) {
	t.Run("создание строки списывает сумму", func(t *testing.T) {
		mockMemberRepo := new(MockMemberRepository)
		log, _ := newTestLogger()
		ledger := NewLedger(mockMemberRepo, log)

		mockMemberRepo.On("AdjustBalance", mock.Anything, int64(1), decEq("-20.00")).Return(dec("-20.00"), nil).Once()

		err := ledger.Apply(context.Background(), domain.OrderItemEvent{
			Kind:      domain.OrderItemCreated,
			MemberID:  1,
			UnitPrice: dec("10.00"),
			Quantity:  2,
		})

		require.NoError(t, err)
		mockMemberRepo.AssertExpectations(t)
	})

	t.Run("нулевая разница не трогает баланс", func(t *testing.T) {
		mockMemberRepo := new(MockMemberRepository)
		log, _ := newTestLogger()
		ledger := NewLedger(mockMemberRepo, log)

		err := ledger.Apply(context.Background(), domain.OrderItemEvent{
			Kind:             domain.OrderItemUpdated,
			MemberID:         1,
			UnitPrice:        dec("10.00"),
			Quantity:         2,
			PreviousQuantity: 2,
		})

		require.NoError(t, err)
		mockMemberRepo.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ошибка репозитория пробрасывается", func(t *testing.T) {
		mockMemberRepo := new(MockMemberRepository)
		log, _ := newTestLogger()
		ledger := NewLedger(mockMemberRepo, log)

		dbErr := errors.New("connection reset")
		mockMemberRepo.On("AdjustBalance", mock.Anything, int64(1), mock.Anything).Return(dec("0"), dbErr).Once()

		err := ledger.Apply(context.Background(), domain.OrderItemEvent{
			Kind:      domain.OrderItemDeleted,
			MemberID:  1,
			UnitPrice: dec("4.00"),
			Quantity:  3,
		})

		assert.ErrorIs(t, err, dbErr)
		mockMemberRepo.AssertExpectations(t)
	})
}
