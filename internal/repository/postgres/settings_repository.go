package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bagdasarian/club-shop/internal/domain"
)

type settingsRepository struct {
	executor DBExecutor
}

func NewSettingsRepository(db *sql.DB) *settingsRepository {
	return &settingsRepository{executor: db}
}

func (r *settingsRepository) Create(ctx context.Context, settings *domain.Settings) error {
	_, err := executorFrom(ctx, r.executor).ExecContext(
		ctx,
		"INSERT INTO settings (id, margin_percent) VALUES (1, $1)",
		settings.MarginPercent,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSettingsExists
		}
		return translateDataError(err)
	}
	return nil
}

func (r *settingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	settings := &domain.Settings{}
	err := executorFrom(ctx, r.executor).QueryRowContext(ctx, "SELECT margin_percent FROM settings WHERE id = 1").
		Scan(&settings.MarginPercent)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("settings")
		}
		return nil, err
	}
	return settings, nil
}

func (r *settingsRepository) Update(ctx context.Context, settings *domain.Settings) error {
	result, err := executorFrom(ctx, r.executor).ExecContext(
		ctx,
		"UPDATE settings SET margin_percent = $1 WHERE id = 1",
		settings.MarginPercent,
	)
	if err != nil {
		return translateDataError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("settings")
	}

	return nil
}
