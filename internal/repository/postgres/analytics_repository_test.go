package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsRepository_TopProducts(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAnalyticsRepository(db)

	mock.ExpectQuery("SELECT p.name, SUM\\(i.quantity\\) AS units").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"name", "units"}).
			AddRow("Cola", int64(12)).
			AddRow("Chips", int64(4)))

	entries, err := repo.TopProducts(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Cola", entries[0].Label)
	assert.Equal(t, int64(12), entries[0].Value.IntPart())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_TopMembers(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAnalyticsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SUM(i.quantity * i.unit_price) AS spent")).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"name", "spent"}).AddRow("Anna", "42.50"))

	entries, err := repo.TopMembers(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "42.50", entries[0].Value.StringFixed(2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_Totals(t *testing.T) {
	t.Run("глобальная сводка включает суммарный баланс", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewAnalyticsRepository(db)

		first := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
		mock.ExpectQuery("SELECT COALESCE\\(SUM\\(total_amount\\), 0\\), COUNT").
			WithoutArgs().
			WillReturnRows(sqlmock.NewRows([]string{"sum", "count", "min"}).AddRow("30.00", 3, first))
		mock.ExpectQuery("SELECT COALESCE\\(SUM\\(balance\\), 0\\) FROM team_members").
			WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow("-10.00"))

		totals, err := repo.Totals(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, 3, totals.TotalOrders)
		require.NotNil(t, totals.FirstOrderAt)
		assert.Equal(t, first, *totals.FirstOrderAt)
		require.NotNil(t, totals.TotalBalance)
		assert.Equal(t, "-10.00", totals.TotalBalance.StringFixed(2))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("сводка участника без заказов", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewAnalyticsRepository(db)

		memberID := int64(4)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE member_id = $1")).
			WithArgs(int64(4)).
			WillReturnRows(sqlmock.NewRows([]string{"sum", "count", "min"}).AddRow("0", 0, nil))

		totals, err := repo.Totals(context.Background(), &memberID)

		require.NoError(t, err)
		assert.Zero(t, totals.TotalOrders)
		assert.Nil(t, totals.FirstOrderAt)
		assert.Nil(t, totals.TotalBalance)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAnalyticsRepository_UnitsSoldSince(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAnalyticsRepository(db)

	since := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("(o.created_at AT TIME ZONE 'UTC')::date")).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"day", "sum"}).AddRow(day, 7))

	days, err := repo.UnitsSoldSince(context.Background(), since)

	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, day, days[0].Day)
	assert.Equal(t, int64(7), days[0].Units)
	assert.NoError(t, mock.ExpectationsWereMet())
}
