package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/bagdasarian/club-shop/internal/domain"
	"github.com/shopspring/decimal"
)

type orderRepository struct {
	executor DBExecutor
}

func NewOrderRepository(db *sql.DB) *orderRepository {
	return &orderRepository{executor: db}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	query := `
		INSERT INTO orders (member_id)
		VALUES ($1)
		RETURNING id, created_at, total_amount
	`

	err := executorFrom(ctx, r.executor).QueryRowContext(ctx, query, order.MemberID).
		Scan(&order.ID, &order.CreatedAt, &order.TotalAmount)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewNotFoundError(fmt.Sprintf("team member with id %d", order.MemberID))
		}
		return err
	}

	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	orders, err := r.query(ctx, "WHERE o.id = $1", id)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, domain.NewNotFoundError(fmt.Sprintf("order with id %d", id))
	}
	return orders[0], nil
}

func (r *orderRepository) List(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error) {
	if filter.MemberID != nil {
		return r.query(ctx, "WHERE o.member_id = $1", *filter.MemberID)
	}
	return r.query(ctx, "")
}

// query читает заказы одним запросом, а их строки с товарами вторым,
// чтобы не делать отдельный запрос на каждый заказ
func (r *orderRepository) query(ctx context.Context, where string, args ...any) ([]*domain.Order, error) {
	exec := executorFrom(ctx, r.executor)

	query := `
		SELECT o.id, o.created_at, o.member_id, o.total_amount
		FROM orders o
	` + where + `
		ORDER BY o.created_at DESC, o.id DESC
	`

	rows, err := exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		order := &domain.Order{Items: []domain.OrderItem{}}
		if err := rows.Scan(&order.ID, &order.CreatedAt, &order.MemberID, &order.TotalAmount); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	if err := loadOrderItems(ctx, exec, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func loadOrderItems(ctx context.Context, exec DBExecutor, orders []*domain.Order) error {
	byID := make(map[int64]*domain.Order, len(orders))
	placeholders := make([]string, len(orders))
	args := make([]any, len(orders))
	for i, order := range orders {
		byID[order.ID] = order
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = order.ID
	}

	query := fmt.Sprintf(`
		SELECT i.id, i.order_id, i.quantity, i.unit_price,
		       p.id, p.name, p.image, p.description, p.visible, p.cost_ex_tax, p.pack_size, p.tax_rate, p.price,
		       c.id, c.name, c.icon, c.visible
		FROM order_items i
		JOIN products p ON i.product_id = p.id
		JOIN categories c ON p.category_id = c.id
		WHERE i.order_id IN (%s)
		ORDER BY i.id
	`, strings.Join(placeholders, ", "))

	rows, err := exec.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		product := &domain.Product{Category: &domain.Category{}}
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.Quantity,
			&item.UnitPrice,
			&product.ID,
			&product.Name,
			&product.Image,
			&product.Description,
			&product.Visible,
			&product.CostExTax,
			&product.PackSize,
			&product.TaxRate,
			&product.Price,
			&product.Category.ID,
			&product.Category.Name,
			&product.Category.Icon,
			&product.Category.Visible,
		)
		if err != nil {
			return err
		}
		product.CategoryID = product.Category.ID
		item.ProductID = product.ID
		item.Product = product

		if order, ok := byID[item.OrderID]; ok {
			order.Items = append(order.Items, item)
		}
	}

	return rows.Err()
}

func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	result, err := executorFrom(ctx, r.executor).ExecContext(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("order with id %d", id))
	}

	return nil
}

func (r *orderRepository) RecalculateTotal(ctx context.Context, id int64) (decimal.Decimal, error) {
	query := `
		UPDATE orders
		SET total_amount = (
			SELECT COALESCE(SUM(i.quantity * i.unit_price), 0)
			FROM order_items i
			WHERE i.order_id = $1
		)
		WHERE id = $1
		RETURNING total_amount
	`

	var total decimal.Decimal
	err := executorFrom(ctx, r.executor).QueryRowContext(ctx, query, id).Scan(&total)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, domain.NewNotFoundError(fmt.Sprintf("order with id %d", id))
		}
		return decimal.Zero, translateDataError(err)
	}

	return total, nil
}

func (r *orderRepository) GetMemberID(ctx context.Context, id int64) (int64, error) {
	var memberID int64
	err := executorFrom(ctx, r.executor).QueryRowContext(ctx, "SELECT member_id FROM orders WHERE id = $1", id).Scan(&memberID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.NewNotFoundError(fmt.Sprintf("order with id %d", id))
		}
		return 0, err
	}
	return memberID, nil
}
