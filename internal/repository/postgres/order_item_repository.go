package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bagdasarian/club-shop/internal/domain"
)

type orderItemRepository struct {
	executor DBExecutor
}

func NewOrderItemRepository(db *sql.DB) *orderItemRepository {
	return &orderItemRepository{executor: db}
}

func (r *orderItemRepository) Create(ctx context.Context, item *domain.OrderItem) error {
	query := `
		INSERT INTO order_items (order_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := executorFrom(ctx, r.executor).QueryRowContext(
		ctx,
		query,
		item.OrderID,
		item.ProductID,
		item.Quantity,
		item.UnitPrice,
	).Scan(&item.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewValidationError("product %d is already in order %d", item.ProductID, item.OrderID)
		}
		if isCheckViolation(err) {
			return domain.NewValidationError("quantity must be at least 1")
		}
		if code, constraint, ok := pgError(err); ok && code == pgForeignKeyViolation {
			if constraint == "order_items_order_id_fkey" {
				return domain.NewNotFoundError(fmt.Sprintf("order with id %d", item.OrderID))
			}
			return domain.NewNotFoundError(fmt.Sprintf("product with id %d", item.ProductID))
		}
		return translateDataError(err)
	}

	return nil
}

func (r *orderItemRepository) GetForUpdate(ctx context.Context, id int64) (*domain.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity, unit_price
		FROM order_items
		WHERE id = $1
		FOR UPDATE
	`

	item := &domain.OrderItem{}
	err := executorFrom(ctx, r.executor).QueryRowContext(ctx, query, id).Scan(
		&item.ID,
		&item.OrderID,
		&item.ProductID,
		&item.Quantity,
		&item.UnitPrice,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("order item with id %d", id))
		}
		return nil, err
	}

	return item, nil
}

// ListByOrderID блокирует строки заказа до конца транзакции
func (r *orderItemRepository) ListByOrderID(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity, unit_price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
		FOR UPDATE
	`

	rows, err := executorFrom(ctx, r.executor).QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *orderItemRepository) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	result, err := executorFrom(ctx, r.executor).ExecContext(ctx, "UPDATE order_items SET quantity = $2 WHERE id = $1", id, quantity)
	if err != nil {
		if isCheckViolation(err) {
			return domain.NewValidationError("quantity must be at least 1")
		}
		return translateDataError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("order item with id %d", id))
	}

	return nil
}

func (r *orderItemRepository) Delete(ctx context.Context, id int64) error {
	result, err := executorFrom(ctx, r.executor).ExecContext(ctx, "DELETE FROM order_items WHERE id = $1", id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("order item with id %d", id))
	}

	return nil
}
