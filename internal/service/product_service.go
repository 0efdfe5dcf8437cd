package service

import (
	"context"

	"github.com/bagdasarian/club-shop/internal/domain"
)

// ProductService - каталог товаров. Цена всегда выводится из себестоимости, ставки налога и наценки.
type ProductService interface {
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	// RepriceAll пересчитывает цены всех товаров и возвращает число измененных
	RepriceAll(ctx context.Context) (int, error)
}
