//go:build integration
// +build integration

package integration

import (
	"context"
	"testing"

	"github.com/bagdasarian/club-shop/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderLedgerFlow(t *testing.T) {
	database := setupTestDB(t)
	svc := newServices(t, database, nil)
	shop := seedShop(t, svc)
	ctx := context.Background()

	// 2 x 0.60 + 1 x 1.10
	order, err := svc.Orders.CreateOrder(ctx, shop.member.ID, []domain.NewOrderLine{
		{ProductID: shop.cola.ID, Quantity: 2},
		{ProductID: shop.water.ID, Quantity: 1},
	})
	require.NoError(t, err)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "2.30", order.TotalAmount.StringFixed(2))
	assert.Equal(t, "-2.30", balanceOf(t, svc, shop.member.ID))

	var colaItem, waterItem domain.OrderItem
	for _, item := range order.Items {
		switch item.ProductID {
		case shop.cola.ID:
			colaItem = item
		case shop.water.ID:
			waterItem = item
		}
	}

	t.Run("изменение количества списывает только разницу", func(t *testing.T) {
		updated, err := svc.Orders.UpdateItemQuantity(ctx, colaItem.ID, 5)
		require.NoError(t, err)

		assert.Equal(t, "4.10", updated.TotalAmount.StringFixed(2))
		assert.Equal(t, "-4.10", balanceOf(t, svc, shop.member.ID))
	})

	t.Run("удаление строки возвращает ее стоимость", func(t *testing.T) {
		updated, err := svc.Orders.DeleteItem(ctx, waterItem.ID)
		require.NoError(t, err)

		assert.Len(t, updated.Items, 1)
		assert.Equal(t, "3.00", updated.TotalAmount.StringFixed(2))
		assert.Equal(t, "-3.00", balanceOf(t, svc, shop.member.ID))
	})

	t.Run("цена строки не меняется после смены наценки", func(t *testing.T) {
		_, err := svc.Settings.SetMargin(ctx, decimalFrom(t, "20"))
		require.NoError(t, err)

		reloaded, err := svc.Orders.GetOrder(ctx, order.ID)
		require.NoError(t, err)
		require.Len(t, reloaded.Items, 1)
		assert.Equal(t, "0.60", reloaded.Items[0].UnitPrice.StringFixed(2))
		assert.Equal(t, "3.00", reloaded.TotalAmount.StringFixed(2))
	})

	t.Run("удаление заказа возвращает всю сумму", func(t *testing.T) {
		require.NoError(t, svc.Orders.DeleteOrder(ctx, order.ID))

		assert.Equal(t, "0.00", balanceOf(t, svc, shop.member.ID))
		_, err := svc.Orders.GetOrder(ctx, order.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCreateOrderRollsBackOnUnknownProduct(t *testing.T) {
	database := setupTestDB(t)
	svc := newServices(t, database, nil)
	shop := seedShop(t, svc)
	ctx := context.Background()

	_, err := svc.Orders.CreateOrder(ctx, shop.member.ID, []domain.NewOrderLine{
		{ProductID: shop.cola.ID, Quantity: 1},
		{ProductID: 9999, Quantity: 1},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)

	var orders, items int
	require.NoError(t, database.QueryRow("SELECT COUNT(*) FROM orders").Scan(&orders))
	require.NoError(t, database.QueryRow("SELECT COUNT(*) FROM order_items").Scan(&items))
	assert.Zero(t, orders)
	assert.Zero(t, items)
	assert.Equal(t, "0.00", balanceOf(t, svc, shop.member.ID))
}

func TestCreateOrderRejectsDuplicateProduct(t *testing.T) {
	database := setupTestDB(t)
	svc := newServices(t, database, nil)
	shop := seedShop(t, svc)

	_, err := svc.Orders.CreateOrder(context.Background(), shop.member.ID, []domain.NewOrderLine{
		{ProductID: shop.cola.ID, Quantity: 1},
		{ProductID: shop.cola.ID, Quantity: 2},
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "0.00", balanceOf(t, svc, shop.member.ID))
}

func TestDeleteProductInUseIsRestricted(t *testing.T) {
	database := setupTestDB(t)
	svc := newServices(t, database, nil)
	shop := seedShop(t, svc)
	ctx := context.Background()

	_, err := svc.Orders.CreateOrder(ctx, shop.member.ID, []domain.NewOrderLine{{ProductID: shop.cola.ID, Quantity: 1}})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Products.DeleteProduct(ctx, shop.cola.ID), domain.ErrRestricted)
	assert.NoError(t, svc.Products.DeleteProduct(ctx, shop.water.ID))
}
