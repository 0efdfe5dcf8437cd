package service

import (
	"context"

	"github.com/bagdasarian/club-shop/internal/domain"
)

const (
	DefaultTopLimit  = 5
	MaxTopLimit      = 50
	DefaultSalesDays = 30
	MaxSalesDays     = 365
)

type AnalyticsService interface {
	TopProducts(ctx context.Context, limit int) (*domain.Series, error)
	TopUsers(ctx context.Context, limit int) (*domain.Series, error)
	// Summary считает сводку по всем заказам (memberID == nil) или по одному участнику
	Summary(ctx context.Context, memberID *int64) (*domain.Summary, error)
	// SalesOverTime возвращает days+1 дневных корзин с нулями для дней без продаж
	SalesOverTime(ctx context.Context, days int) (*domain.Series, error)
}
