package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/bagdasarian/club-shop/internal/domain"
	"github.com/shopspring/decimal"
)

type analyticsRepository struct {
	executor DBExecutor
}

func NewAnalyticsRepository(db *sql.DB) *analyticsRepository {
	return &analyticsRepository{executor: db}
}

func (r *analyticsRepository) TopProducts(ctx context.Context, limit int) ([]domain.RankedEntry, error) {
	query := `
		SELECT p.name, SUM(i.quantity) AS units
		FROM order_items i
		JOIN products p ON i.product_id = p.id
		GROUP BY p.id, p.name
		ORDER BY units DESC, p.name
		LIMIT $1
	`
	return r.ranked(ctx, query, limit)
}

func (r *analyticsRepository) TopMembers(ctx context.Context, limit int) ([]domain.RankedEntry, error) {
	query := `
		SELECT m.name, SUM(i.quantity * i.unit_price) AS spent
		FROM order_items i
		JOIN orders o ON i.order_id = o.id
		JOIN team_members m ON o.member_id = m.id
		GROUP BY m.id, m.name
		ORDER BY spent DESC, m.name
		LIMIT $1
	`
	return r.ranked(ctx, query, limit)
}

func (r *analyticsRepository) ranked(ctx context.Context, query string, limit int) ([]domain.RankedEntry, error) {
	rows, err := executorFrom(ctx, r.executor).QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.RankedEntry, 0)
	for rows.Next() {
		var entry domain.RankedEntry
		if err := rows.Scan(&entry.Label, &entry.Value); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (r *analyticsRepository) Totals(ctx context.Context, memberID *int64) (*domain.SummaryTotals, error) {
	exec := executorFrom(ctx, r.executor)

	query := `
		SELECT COALESCE(SUM(total_amount), 0), COUNT(*), MIN(created_at)
		FROM orders
	`
	var args []any
	if memberID != nil {
		query += " WHERE member_id = $1"
		args = append(args, *memberID)
	}

	totals := &domain.SummaryTotals{}
	var firstOrderAt sql.NullTime
	if err := exec.QueryRowContext(ctx, query, args...).Scan(&totals.TotalSpent, &totals.TotalOrders, &firstOrderAt); err != nil {
		return nil, err
	}
	if firstOrderAt.Valid {
		totals.FirstOrderAt = &firstOrderAt.Time
	}

	if memberID == nil {
		var balance decimal.Decimal
		if err := exec.QueryRowContext(ctx, "SELECT COALESCE(SUM(balance), 0) FROM team_members").Scan(&balance); err != nil {
			return nil, err
		}
		totals.TotalBalance = &balance
	}

	return totals, nil
}

func (r *analyticsRepository) UnitsSoldSince(ctx context.Context, since time.Time) ([]domain.DailyUnits, error) {
	query := `
		SELECT (o.created_at AT TIME ZONE 'UTC')::date AS day, SUM(i.quantity)
		FROM order_items i
		JOIN orders o ON i.order_id = o.id
		WHERE o.created_at >= $1
		GROUP BY day
		ORDER BY day
	`

	rows, err := executorFrom(ctx, r.executor).QueryContext(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := make([]domain.DailyUnits, 0)
	for rows.Next() {
		var d domain.DailyUnits
		if err := rows.Scan(&d.Day, &d.Units); err != nil {
			return nil, err
		}
		days = append(days, d)
	}

	return days, rows.Err()
}
