package repository

import (
	"context"

	"github.com/bagdasarian/club-shop/internal/domain"
)

type SettingsRepository interface {
	Create(ctx context.Context, settings *domain.Settings) error
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, settings *domain.Settings) error
}
