package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bagdasarian/club-shop/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPaymentService_CreatePayment(t *testing.T) {
	t.Run("платеж всегда создается pending", func(t *testing.T) {
		mockPaymentRepo := new(MockPaymentRepository)
		mockMemberRepo := new(MockMemberRepository)
		log, _ := newTestLogger()
		service := NewPaymentService(mockPaymentRepo, mockMemberRepo, new(MockTransactor), log)

		mockPaymentRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
			return !p.Completed
		})).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.Payment)
			p.ID = 7
			p.CreatedAt = time.Now()
		}).Return(nil).Once()

		result, err := service.CreatePayment(context.Background(), &domain.Payment{
			MemberID:  1,
			Amount:    dec("20.00"),
			Completed: true,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(7), result.ID)
		assert.False(t, result.Completed)
		mockPaymentRepo.AssertExpectations(t)
	})

	t.Run("ошибка: сумма не положительная", func(t *testing.T) {
		mockPaymentRepo := new(MockPaymentRepository)
		log, _ := newTestLogger()
		service := NewPaymentService(mockPaymentRepo, new(MockMemberRepository), new(MockTransactor), log)

		_, err := service.CreatePayment(context.Background(), &domain.Payment{MemberID: 1, Amount: dec("0")})

		assert.True(t, errors.Is(err, domain.ErrValidation))
		mockPaymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestPaymentService_CompletePayment(t *testing.T) {
	t.Run("первое завершение зачисляет сумму", func(t *testing.T) {
		mockPaymentRepo := new(MockPaymentRepository)
		mockMemberRepo := new(MockMemberRepository)
		tx := new(MockTransactor)
		log, hook := newTestLogger()
		service := NewPaymentService(mockPaymentRepo, mockMemberRepo, tx, log)

		payment := &domain.Payment{ID: 7, MemberID: 1, Amount: dec("20.00"), Completed: true}
		mockPaymentRepo.On("MarkCompleted", mock.Anything, int64(7)).Return(payment, true, nil).Once()
		mockMemberRepo.On("AdjustBalance", mock.Anything, int64(1), decEq("20.00")).Return(dec("20.00"), nil).Once()

		result, outcome, err := service.CompletePayment(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, domain.CompletionDone, outcome)
		assert.True(t, result.Completed)
		assert.Equal(t, 1, tx.Calls)
		require.NotNil(t, hook.LastEntry())
		assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
		mockPaymentRepo.AssertExpectations(t)
		mockMemberRepo.AssertExpectations(t)
	})

	t.Run("повторное завершение - предупреждение без изменения баланса", func(t *testing.T) {
		mockPaymentRepo := new(MockPaymentRepository)
		mockMemberRepo := new(MockMemberRepository)
		log, hook := newTestLogger()
		service := NewPaymentService(mockPaymentRepo, mockMemberRepo, new(MockTransactor), log)

		payment := &domain.Payment{ID: 7, MemberID: 1, Amount: dec("20.00"), Completed: true}
		mockPaymentRepo.On("MarkCompleted", mock.Anything, int64(7)).Return(payment, false, nil).Once()

		result, outcome, err := service.CompletePayment(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, domain.CompletionAlreadyDone, outcome)
		assert.True(t, result.Completed)
		require.NotNil(t, hook.LastEntry())
		assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
		mockMemberRepo.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
		mockPaymentRepo.AssertExpectations(t)
	})

	t.Run("два вызова подряд зачисляют сумму один раз", func(t *testing.T) {
		mockPaymentRepo := new(MockPaymentRepository)
		mockMemberRepo := new(MockMemberRepository)
		log, _ := newTestLogger()
		service := NewPaymentService(mockPaymentRepo, mockMemberRepo, new(MockTransactor), log)

		payment := &domain.Payment{ID: 7, MemberID: 1, Amount: dec("20.00"), Completed: true}
		mockPaymentRepo.On("MarkCompleted", mock.Anything, int64(7)).Return(payment, true, nil).Once()
		mockPaymentRepo.On("MarkCompleted", mock.Anything, int64(7)).Return(payment, false, nil).Once()
		mockMemberRepo.On("AdjustBalance", mock.Anything, int64(1), decEq("20.00")).Return(dec("20.00"), nil).Once()

		_, first, err := service.CompletePayment(context.Background(), 7)
		require.NoError(t, err)
		_, second, err := service.CompletePayment(context.Background(), 7)
		require.NoError(t, err)

		assert.Equal(t, domain.CompletionDone, first)
		assert.Equal(t, domain.CompletionAlreadyDone, second)
		mockMemberRepo.AssertNumberOfCalls(t, "AdjustBalance", 1)
		mockPaymentRepo.AssertExpectations(t)
	})

	t.Run("ошибка: платеж не найден", func(t *testing.T) {
		mockPaymentRepo := new(MockPaymentRepository)
		log, _ := newTestLogger()
		service := NewPaymentService(mockPaymentRepo, new(MockMemberRepository), new(MockTransactor), log)

		mockPaymentRepo.On("MarkCompleted", mock.Anything, int64(9)).
			Return(nil, false, domain.NewNotFoundError("payment with id 9")).Once()

		result, _, err := service.CompletePayment(context.Background(), 9)

		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		mockPaymentRepo.AssertExpectations(t)
	})
}
