package handler

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/bagdasarian/club-shop/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainOrderToHTTP(t *testing.T) {
	order := &domain.Order{
		ID:        100,
		CreatedAt: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		MemberID:  1,
		Items: []domain.OrderItem{
			{
				ID:        1,
				ProductID: 10,
				Product:   &domain.Product{ID: 10, Name: "Cola", Category: &domain.Category{ID: 3, Name: "Drinks"}, Price: decimal.RequireFromString("1.1")},
				Quantity:  2,
				UnitPrice: decimal.RequireFromString("10"),
			},
		},
		TotalAmount: decimal.RequireFromString("20"),
	}

	response := domainOrderToHTTP(order)

	assert.Equal(t, int64(1), response.By)
	assert.Equal(t, "2026-03-10T12:00:00Z", response.CreatedAt)
	assert.Equal(t, "20.00", response.TotalAmount)
	require.Len(t, response.Items, 1)
	assert.Equal(t, "10.00", response.Items[0].UnitPrice)
	assert.Equal(t, "20.00", response.Items[0].Amount)
	assert.Equal(t, "1.10", response.Items[0].Product.Price)
	assert.Equal(t, "Drinks", response.Items[0].Product.Category.Name)
}

func TestDomainSeriesToHTTP(t *testing.T) {
	series := &domain.Series{
		Labels: []string{"Cola", "Chips"},
		Values: []decimal.Decimal{decimal.NewFromInt(12), decimal.RequireFromString("4.5")},
	}

	body, err := json.Marshal(domainSeriesToHTTP(series))

	require.NoError(t, err)
	assert.JSONEq(t, `{"labels":["Cola","Chips"],"values":[12,4.5]}`, string(body))
}

func TestDomainSummaryToHTTP(t *testing.T) {
	t.Run("общий баланс только в глобальной сводке", func(t *testing.T) {
		balance := decimal.RequireFromString("-3")
		response := domainSummaryToHTTP(&domain.Summary{TotalSpent: decimal.NewFromInt(30), TotalOrders: 3, TotalBalance: &balance})

		require.NotNil(t, response.TotalBalance)
		assert.Equal(t, "-3.00", *response.TotalBalance)
		assert.Equal(t, "30.00", response.TotalSpent)
	})

	t.Run("сводка участника без общего баланса", func(t *testing.T) {
		body, err := json.Marshal(domainSummaryToHTTP(&domain.Summary{}))

		require.NoError(t, err)
		assert.NotContains(t, string(body), "total_balance")
	})
}

func TestHTTPCategoryToDomain(t *testing.T) {
	assert.True(t, httpCategoryToDomain(CategoryRequest{Name: "Drinks"}).Visible)

	hidden := false
	assert.False(t, httpCategoryToDomain(CategoryRequest{Name: "Drinks", Visible: &hidden}).Visible)
}
