package service

import (
	"context"

	"github.com/bagdasarian/club-shop/internal/domain"
	"github.com/shopspring/decimal"
)

type SettingsService interface {
	// InitSettings создает единственную запись настроек; повторный вызов - ErrSettingsExists
	InitSettings(ctx context.Context, marginPercent decimal.Decimal) (*domain.Settings, error)
	// SetMargin меняет наценку и пересчитывает цены каталога в той же транзакции
	SetMargin(ctx context.Context, marginPercent decimal.Decimal) (repriced int, err error)
	Margin(ctx context.Context) (decimal.Decimal, error)
}
