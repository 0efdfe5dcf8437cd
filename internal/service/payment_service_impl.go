package service

import (
	"context"

	"github.com/bagdasarian/club-shop/internal/domain"
	"github.com/bagdasarian/club-shop/internal/repository"
	"github.com/sirupsen/logrus"
)

type paymentService struct {
	paymentRepo repository.PaymentRepository
	memberRepo  repository.MemberRepository
	transactor  repository.Transactor
	log         logrus.FieldLogger
}

// NewPaymentService создает новый экземпляр PaymentService
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	memberRepo repository.MemberRepository,
	transactor repository.Transactor,
	log logrus.FieldLogger,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		memberRepo:  memberRepo,
		transactor:  transactor,
		log:         log,
	}
}

// CreatePayment создает платеж в состоянии pending; completed из запроса игнорируется
func (s *paymentService) CreatePayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	if err := payment.Validate(); err != nil {
		return nil, err
	}
	payment.Completed = false

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) GetPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	return s.paymentRepo.GetByID(ctx, id)
}

func (s *paymentService) ListPayments(ctx context.Context) ([]*domain.Payment, error) {
	return s.paymentRepo.List(ctx)
}

func (s *paymentService) CompletePayment(ctx context.Context, id int64) (*domain.Payment, domain.CompletionOutcome, error) {
	var (
		payment *domain.Payment
		outcome domain.CompletionOutcome
	)

	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		var (
			completed bool
			err       error
		)
		payment, completed, err = s.paymentRepo.MarkCompleted(ctx, id)
		if err != nil {
			return err
		}

		if !completed {
			outcome = domain.CompletionAlreadyDone
			return nil
		}

		balance, err := s.memberRepo.AdjustBalance(ctx, payment.MemberID, payment.Amount)
		if err != nil {
			return err
		}

		outcome = domain.CompletionDone
		s.log.WithFields(logrus.Fields{
			"payment_id": payment.ID,
			"member_id":  payment.MemberID,
			"amount":     payment.Amount.StringFixed(2),
			"balance":    balance.StringFixed(2),
		}).Info("payment completed")
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	if outcome == domain.CompletionAlreadyDone {
		s.log.WithField("payment_id", id).Warn("payment is already completed, balance left unchanged")
	}

	return payment, outcome, nil
}
