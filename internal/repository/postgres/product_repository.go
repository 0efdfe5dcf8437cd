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

type productRepository struct {
	executor DBExecutor
}

func NewProductRepository(db *sql.DB) *productRepository {
	return &productRepository{executor: db}
}

const productSelect = `
	SELECT p.id, p.name, p.image, p.description, p.visible, p.cost_ex_tax, p.pack_size, p.tax_rate, p.price,
	       c.id, c.name, c.icon, c.visible
	FROM products p
	JOIN categories c ON p.category_id = c.id
`

func scanProduct(row interface{ Scan(dest ...any) error }) (*domain.Product, error) {
	product := &domain.Product{Category: &domain.Category{}}
	err := row.Scan(
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
		return nil, err
	}
	product.CategoryID = product.Category.ID
	return product, nil
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (name, image, description, category_id, visible, cost_ex_tax, pack_size, tax_rate, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := executorFrom(ctx, r.executor).QueryRowContext(
		ctx,
		query,
		product.Name,
		product.Image,
		product.Description,
		product.CategoryID,
		product.Visible,
		product.CostExTax,
		product.PackSize,
		int(product.TaxRate),
		product.Price,
	).Scan(&product.ID)
	if err != nil {
		return translateProductWriteError(err, product)
	}

	return nil
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	query := `
		UPDATE products
		SET name = $2, image = $3, description = $4, category_id = $5, visible = $6,
		    cost_ex_tax = $7, pack_size = $8, tax_rate = $9, price = $10
		WHERE id = $1
	`

	result, err := executorFrom(ctx, r.executor).ExecContext(
		ctx,
		query,
		product.ID,
		product.Name,
		product.Image,
		product.Description,
		product.CategoryID,
		product.Visible,
		product.CostExTax,
		product.PackSize,
		int(product.TaxRate),
		product.Price,
	)
	if err != nil {
		return translateProductWriteError(err, product)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("product with id %d", product.ID))
	}

	return nil
}

func translateProductWriteError(err error, product *domain.Product) error {
	if isForeignKeyViolation(err) {
		return domain.NewNotFoundError(fmt.Sprintf("category with id %d", product.CategoryID))
	}
	if isCheckViolation(err) {
		return domain.NewValidationError("product fields violate catalog constraints")
	}
	return translateDataError(err)
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := scanProduct(executorFrom(ctx, r.executor).QueryRowContext(ctx, productSelect+" WHERE p.id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("product with id %d", id))
		}
		return nil, err
	}
	return product, nil
}

func (r *productRepository) List(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	query := productSelect
	var args []any
	if filter.CategoryID != nil {
		query += " WHERE p.category_id = $1"
		args = append(args, *filter.CategoryID)
	}
	query += " ORDER BY p.name"

	rows, err := executorFrom(ctx, r.executor).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	result, err := executorFrom(ctx, r.executor).ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewRestrictedError("product with id %d is referenced by order items", id)
		}
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("product with id %d", id))
	}

	return nil
}

func (r *productRepository) LockPrices(ctx context.Context, ids []int64) (map[int64]decimal.Decimal, error) {
	prices := make(map[int64]decimal.Decimal, len(ids))
	if len(ids) == 0 {
		return prices, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := fmt.Sprintf(
		"SELECT id, price FROM products WHERE id IN (%s) FOR SHARE",
		strings.Join(placeholders, ", "),
	)

	rows, err := executorFrom(ctx, r.executor).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var price decimal.Decimal
		if err := rows.Scan(&id, &price); err != nil {
			return nil, err
		}
		prices[id] = price
	}

	return prices, rows.Err()
}

func (r *productRepository) UpdatePrice(ctx context.Context, id int64, price decimal.Decimal) error {
	result, err := executorFrom(ctx, r.executor).ExecContext(ctx, "UPDATE products SET price = $2 WHERE id = $1", id, price)
	if err != nil {
		return translateDataError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("product with id %d", id))
	}

	return nil
}
