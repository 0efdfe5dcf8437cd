package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bagdasarian/club-shop/internal/domain"
)

type categoryRepository struct {
	executor DBExecutor
}

func NewCategoryRepository(db *sql.DB) *categoryRepository {
	return &categoryRepository{executor: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	query := `
		INSERT INTO categories (name, icon, visible)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := executorFrom(ctx, r.executor).QueryRowContext(
		ctx,
		query,
		category.Name,
		category.Icon,
		category.Visible,
	).Scan(&category.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewAlreadyExistsError("category %q already exists", category.Name)
		}
		return translateDataError(err)
	}

	return nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	query := `
		SELECT id, name, icon, visible
		FROM categories
		WHERE id = $1
	`

	category := &domain.Category{}
	err := executorFrom(ctx, r.executor).QueryRowContext(ctx, query, id).Scan(
		&category.ID,
		&category.Name,
		&category.Icon,
		&category.Visible,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("category with id %d", id))
		}
		return nil, err
	}

	return category, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	query := `
		SELECT id, name, icon, visible
		FROM categories
		ORDER BY name
	`

	rows, err := executorFrom(ctx, r.executor).QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		category := &domain.Category{}
		if err := rows.Scan(&category.ID, &category.Name, &category.Icon, &category.Visible); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	result, err := executorFrom(ctx, r.executor).ExecContext(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewRestrictedError("category with id %d still has products", id)
		}
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("category with id %d", id))
	}

	return nil
}
