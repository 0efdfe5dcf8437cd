package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bagdasarian/club-shop/internal/domain"
)

type paymentRepository struct {
	executor DBExecutor
}

func NewPaymentRepository(db *sql.DB) *paymentRepository {
	return &paymentRepository{executor: db}
}

const paymentColumns = "id, member_id, description, amount, proof_picture, completed, created_at"

func scanPayment(row interface{ Scan(dest ...any) error }) (*domain.Payment, error) {
	payment := &domain.Payment{}
	var proof sql.NullString
	err := row.Scan(
		&payment.ID,
		&payment.MemberID,
		&payment.Description,
		&payment.Amount,
		&proof,
		&payment.Completed,
		&payment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if proof.Valid {
		payment.ProofPicture = &proof.String
	}
	return payment, nil
}

// Create всегда создает платеж в состоянии pending
func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (member_id, description, amount, proof_picture, completed)
		VALUES ($1, $2, $3, $4, FALSE)
		RETURNING id, completed, created_at
	`

	var proof sql.NullString
	if payment.ProofPicture != nil {
		proof = sql.NullString{String: *payment.ProofPicture, Valid: true}
	}

	err := executorFrom(ctx, r.executor).QueryRowContext(
		ctx,
		query,
		payment.MemberID,
		payment.Description,
		payment.Amount,
		proof,
	).Scan(&payment.ID, &payment.Completed, &payment.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewNotFoundError(fmt.Sprintf("team member with id %d", payment.MemberID))
		}
		if isCheckViolation(err) {
			return domain.NewValidationError("amount must be greater than 0")
		}
		return translateDataError(err)
	}

	return nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	query := "SELECT " + paymentColumns + " FROM payments WHERE id = $1"

	payment, err := scanPayment(executorFrom(ctx, r.executor).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("payment with id %d", id))
		}
		return nil, err
	}
	return payment, nil
}

func (r *paymentRepository) List(ctx context.Context) ([]*domain.Payment, error) {
	query := "SELECT " + paymentColumns + " FROM payments ORDER BY created_at DESC, id DESC"

	rows, err := executorFrom(ctx, r.executor).QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]*domain.Payment, 0)
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}

	return payments, rows.Err()
}

// MarkCompleted - условный UPDATE: два конкурентных вызова не завершат платеж дважды
func (r *paymentRepository) MarkCompleted(ctx context.Context, id int64) (*domain.Payment, bool, error) {
	query := `
		UPDATE payments
		SET completed = TRUE
		WHERE id = $1 AND completed = FALSE
		RETURNING ` + paymentColumns

	payment, err := scanPayment(executorFrom(ctx, r.executor).QueryRowContext(ctx, query, id))
	if err == nil {
		return payment, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, err
	}

	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}
