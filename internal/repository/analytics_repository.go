package repository

import (
	"context"
	"time"

	"github.com/bagdasarian/club-shop/internal/domain"
)

type AnalyticsRepository interface {
	TopProducts(ctx context.Context, limit int) ([]domain.RankedEntry, error)
	TopMembers(ctx context.Context, limit int) ([]domain.RankedEntry, error)
	// Totals считает агрегаты по всем заказам или по заказам одного участника
	Totals(ctx context.Context, memberID *int64) (*domain.SummaryTotals, error)
	UnitsSoldSince(ctx context.Context, since time.Time) ([]domain.DailyUnits, error)
}
