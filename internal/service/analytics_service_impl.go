package service

import (
	"context"
	"time"

	"github.com/bagdasarian/club-shop/internal/domain"
	"github.com/bagdasarian/club-shop/internal/repository"
	"github.com/shopspring/decimal"
)

const dayLayout = "2006-01-02"

type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	memberRepo    repository.MemberRepository
	now           func() time.Time
}

// NewAnalyticsService создает новый экземпляр AnalyticsService
func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository, memberRepo repository.MemberRepository) AnalyticsService {
	return &analyticsService{
		analyticsRepo: analyticsRepo,
		memberRepo:    memberRepo,
		now:           time.Now,
	}
}

func (s *analyticsService) TopProducts(ctx context.Context, limit int) (*domain.Series, error) {
	if err := validateTopLimit(limit); err != nil {
		return nil, err
	}

	entries, err := s.analyticsRepo.TopProducts(ctx, limit)
	if err != nil {
		return nil, err
	}
	return rankedSeries(entries), nil
}

func (s *analyticsService) TopUsers(ctx context.Context, limit int) (*domain.Series, error) {
	if err := validateTopLimit(limit); err != nil {
		return nil, err
	}

	entries, err := s.analyticsRepo.TopMembers(ctx, limit)
	if err != nil {
		return nil, err
	}
	return rankedSeries(entries), nil
}

func (s *analyticsService) Summary(ctx context.Context, memberID *int64) (*domain.Summary, error) {
	if memberID != nil {
		if _, err := s.memberRepo.GetByID(ctx, *memberID); err != nil {
			return nil, err
		}
	}

	totals, err := s.analyticsRepo.Totals(ctx, memberID)
	if err != nil {
		return nil, err
	}

	summary := &domain.Summary{
		TotalSpent:      totals.TotalSpent,
		TotalOrders:     totals.TotalOrders,
		AvgOrderValue:   decimal.Zero,
		AvgOrdersPerDay: decimal.Zero,
		TotalBalance:    totals.TotalBalance,
	}
	if totals.TotalOrders == 0 {
		return summary, nil
	}

	orders := decimal.NewFromInt(int64(totals.TotalOrders))
	summary.AvgOrderValue = totals.TotalSpent.DivRound(orders, 2)

	if totals.FirstOrderAt != nil {
		days := daysBetween(*totals.FirstOrderAt, s.now()) + 1
		if days < 1 {
			days = 1
		}
		summary.AvgOrdersPerDay = orders.DivRound(decimal.NewFromInt(int64(days)), 2)
	}

	return summary, nil
}

func (s *analyticsService) SalesOverTime(ctx context.Context, days int) (*domain.Series, error) {
	if days < 1 || days > MaxSalesDays {
		return nil, domain.NewValidationError("days must be between 1 and %d", MaxSalesDays)
	}

	today := truncateToDay(s.now())
	start := today.AddDate(0, 0, -days)

	sold, err := s.analyticsRepo.UnitsSoldSince(ctx, start)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]int64, len(sold))
	for _, d := range sold {
		byDay[d.Day.UTC().Format(dayLayout)] += d.Units
	}

	series := &domain.Series{
		Labels: make([]string, 0, days+1),
		Values: make([]decimal.Decimal, 0, days+1),
	}
	for i := 0; i <= days; i++ {
		label := start.AddDate(0, 0, i).Format(dayLayout)
		series.Labels = append(series.Labels, label)
		series.Values = append(series.Values, decimal.NewFromInt(byDay[label]))
	}

	return series, nil
}

func validateTopLimit(limit int) error {
	if limit < 1 || limit > MaxTopLimit {
		return domain.NewValidationError("limit must be between 1 and %d", MaxTopLimit)
	}
	return nil
}

func rankedSeries(entries []domain.RankedEntry) *domain.Series {
	series := &domain.Series{
		Labels: make([]string, 0, len(entries)),
		Values: make([]decimal.Decimal, 0, len(entries)),
	}
	for _, e := range entries {
		series.Labels = append(series.Labels, e.Label)
		series.Values = append(series.Values, e.Value)
	}
	return series
}

// truncateToDay - полночь по UTC
func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(truncateToDay(to).Sub(truncateToDay(from)).Hours() / 24)
}
