package service

import (
	"context"

	"github.com/bagdasarian/club-shop/internal/domain"
	"github.com/bagdasarian/club-shop/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type productService struct {
	productRepo   repository.ProductRepository
	settingsRepo  repository.SettingsRepository
	transactor    repository.Transactor
	defaultMargin decimal.Decimal
	log           logrus.FieldLogger
}

// NewProductService создает новый экземпляр ProductService
func NewProductService(
	productRepo repository.ProductRepository,
	settingsRepo repository.SettingsRepository,
	transactor repository.Transactor,
	defaultMargin decimal.Decimal,
	log logrus.FieldLogger,
) ProductService {
	return &productService{
		productRepo:   productRepo,
		settingsRepo:  settingsRepo,
		transactor:    transactor,
		defaultMargin: defaultMargin,
		log:           log,
	}
}

// CreateProduct валидирует товар и сохраняет его с рассчитанной ценой
func (s *productService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := product.Validate(); err != nil {
		return nil, err
	}

	margin, err := currentMargin(ctx, s.settingsRepo, s.defaultMargin)
	if err != nil {
		return nil, err
	}
	product.ApplyPricing(margin)

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return s.productRepo.GetByID(ctx, product.ID)
}

// UpdateProduct пересчитывает цену при любом изменении товара.
// Цены уже созданных строк заказов не меняются.
func (s *productService) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := product.Validate(); err != nil {
		return nil, err
	}

	margin, err := currentMargin(ctx, s.settingsRepo, s.defaultMargin)
	if err != nil {
		return nil, err
	}
	product.ApplyPricing(margin)

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return s.productRepo.GetByID(ctx, product.ID)
}

func (s *productService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *productService) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	return s.productRepo.List(ctx, filter)
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	return s.productRepo.Delete(ctx, id)
}

func (s *productService) RepriceAll(ctx context.Context) (int, error) {
	var repriced int
	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		margin, err := currentMargin(ctx, s.settingsRepo, s.defaultMargin)
		if err != nil {
			return err
		}

		products, err := s.productRepo.List(ctx, domain.ProductFilter{})
		if err != nil {
			return err
		}

		for _, product := range products {
			price := domain.CalculatePrice(product.CostExTax, product.PackSize, product.TaxRate, margin)
			if price.Equal(product.Price) {
				continue
			}
			if err := s.productRepo.UpdatePrice(ctx, product.ID, price); err != nil {
				return err
			}
			repriced++
		}

		s.log.WithFields(logrus.Fields{
			"margin_percent": margin.String(),
			"repriced":       repriced,
			"total":          len(products),
		}).Info("catalog repriced")

		return nil
	})
	if err != nil {
		return 0, err
	}

	return repriced, nil
}
