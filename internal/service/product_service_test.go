package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bagdasarian/club-shop/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupProductService() (ProductService, *MockProductRepository, *MockSettingsRepository, *MockTransactor) {
	mockProductRepo := new(MockProductRepository)
	mockSettingsRepo := new(MockSettingsRepository)
	tx := new(MockTransactor)
	log, _ := newTestLogger()
	return NewProductService(mockProductRepo, mockSettingsRepo, tx, dec("10"), log), mockProductRepo, mockSettingsRepo, tx
}

func TestProductService_CreateProduct(t *testing.T) {
	t.Run("цена рассчитывается из наценки в настройках", func(t *testing.T) {
		service, products, settings, _ := setupProductService()

		product := &domain.Product{
			Name:       "Cola",
			CategoryID: 1,
			CostExTax:  dec("12.00"),
			PackSize:   24,
			TaxRate:    domain.TaxRateReduced,
		}

		settings.On("Get", mock.Anything).Return(&domain.Settings{MarginPercent: dec("10")}, nil).Once()
		products.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
			// 12 * 1.09 / 24 * 1.10 = 0.5995 -> 0.60
			return p.Price.Equal(dec("0.60"))
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Product).ID = 5
		}).Return(nil).Once()
		products.On("GetByID", mock.Anything, int64(5)).Return(product, nil).Once()

		result, err := service.CreateProduct(context.Background(), product)

		require.NoError(t, err)
		assert.Equal(t, "0.60", result.Price.StringFixed(2))
		products.AssertExpectations(t)
		settings.AssertExpectations(t)
	})

	t.Run("без настроек используется наценка по умолчанию", func(t *testing.T) {
		service, products, settings, _ := setupProductService()

		product := &domain.Product{Name: "Water", CategoryID: 1, CostExTax: dec("24.00"), PackSize: 24, TaxRate: domain.TaxRateZero}

		settings.On("Get", mock.Anything).Return(nil, domain.NewNotFoundError("settings")).Once()
		products.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
			return p.Price.Equal(dec("1.10"))
		})).Return(nil).Once()
		products.On("GetByID", mock.Anything, mock.Anything).Return(product, nil).Once()

		_, err := service.CreateProduct(context.Background(), product)

		require.NoError(t, err)
		products.AssertExpectations(t)
	})

	t.Run("ошибка: недопустимая ставка налога", func(t *testing.T) {
		service, products, _, _ := setupProductService()

		_, err := service.CreateProduct(context.Background(), &domain.Product{Name: "Cola", TaxRate: domain.TaxRate(7)})

		assert.True(t, errors.Is(err, domain.ErrValidation))
		products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestProductService_UpdateProduct(t *testing.T) {
	service, products, settings, _ := setupProductService()

	product := &domain.Product{ID: 5, Name: "Cola", CategoryID: 1, CostExTax: dec("12.00"), PackSize: 0, TaxRate: domain.TaxRateHigh, Price: dec("9.99")}

	settings.On("Get", mock.Anything).Return(&domain.Settings{MarginPercent: dec("10")}, nil).Once()
	products.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
		return p.Price.IsZero()
	})).Return(nil).Once()
	products.On("GetByID", mock.Anything, int64(5)).Return(product, nil).Once()

	result, err := service.UpdateProduct(context.Background(), product)

	require.NoError(t, err)
	assert.True(t, result.Price.IsZero())
	products.AssertExpectations(t)
}

func TestProductService_RepriceAll(t *testing.T) {
	t.Run("обновляются только изменившиеся цены", func(t *testing.T) {
		service, products, settings, tx := setupProductService()

		catalog := []*domain.Product{
			{ID: 1, CostExTax: dec("12.00"), PackSize: 24, TaxRate: domain.TaxRateReduced, Price: dec("0.60")},
			{ID: 2, CostExTax: dec("24.00"), PackSize: 24, TaxRate: domain.TaxRateZero, Price: dec("1.00")},
		}

		settings.On("Get", mock.Anything).Return(&domain.Settings{MarginPercent: dec("10")}, nil).Once()
		products.On("List", mock.Anything, domain.ProductFilter{}).Return(catalog, nil).Once()
		products.On("UpdatePrice", mock.Anything, int64(2), decEq("1.10")).Return(nil).Once()

		repriced, err := service.RepriceAll(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 1, repriced)
		assert.Equal(t, 1, tx.Calls)
		products.AssertExpectations(t)
	})
}
