package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bagdasarian/club-shop/internal/domain"
	"github.com/bagdasarian/club-shop/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	productListsIndex = "products:lists"
	productsAllKey    = "products:all"
)

func productKey(id int64) string {
	return fmt.Sprintf("product:%d", id)
}

func productListKey(filter domain.ProductFilter) string {
	if filter.CategoryID != nil {
		return fmt.Sprintf("products:category:%d", *filter.CategoryID)
	}
	return productsAllKey
}

// CachedProductRepository кэширует чтение каталога в Redis.
// Любая запись сбрасывает карточку товара и все закэшированные списки.
type CachedProductRepository struct {
	realRepo repository.ProductRepository
	store
}

func NewCachedProductRepository(
	realRepo repository.ProductRepository,
	rdb *redis.Client,
	ttl time.Duration,
	log logrus.FieldLogger,
) *CachedProductRepository {
	return &CachedProductRepository{
		realRepo: realRepo,
		store: store{
			redis: rdb,
			ttl:   ttl,
			log:   log.WithField("cache", "products"),
		},
	}
}

func (c *CachedProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	if c.bypass(ctx) {
		return c.realRepo.GetByID(ctx, id)
	}

	key := productKey(id)

	var cached domain.Product
	switch c.load(ctx, key, &cached) {
	case hit:
		return &cached, nil
	case hitNotFound:
		return nil, domain.NewNotFoundError(fmt.Sprintf("product with id %d", id))
	}

	product, err := c.realRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.markNotFound(ctx, key)
		}
		return nil, err
	}

	c.save(ctx, key, product)
	return product, nil
}

func (c *CachedProductRepository) List(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	if c.bypass(ctx) {
		return c.realRepo.List(ctx, filter)
	}

	key := productListKey(filter)

	var cached []*domain.Product
	if c.load(ctx, key, &cached) == hit {
		return cached, nil
	}

	products, err := c.realRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	c.saveIndexed(ctx, productListsIndex, key, products)
	return products, nil
}

func (c *CachedProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if err := c.realRepo.Create(ctx, product); err != nil {
		return err
	}

	c.invalidate(ctx, []string{productListsIndex}, productKey(product.ID))
	return nil
}

func (c *CachedProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if err := c.realRepo.Update(ctx, product); err != nil {
		return err
	}

	c.invalidate(ctx, []string{productListsIndex}, productKey(product.ID))
	return nil
}

func (c *CachedProductRepository) UpdatePrice(ctx context.Context, id int64, price decimal.Decimal) error {
	if err := c.realRepo.UpdatePrice(ctx, id, price); err != nil {
		return err
	}

	c.invalidate(ctx, []string{productListsIndex}, productKey(id))
	return nil
}

func (c *CachedProductRepository) Delete(ctx context.Context, id int64) error {
	if err := c.realRepo.Delete(ctx, id); err != nil {
		return err
	}

	c.invalidate(ctx, []string{productListsIndex}, productKey(id))
	return nil
}

// LockPrices всегда идет в БД: нужна блокировка строк
func (c *CachedProductRepository) LockPrices(ctx context.Context, ids []int64) (map[int64]decimal.Decimal, error) {
	return c.realRepo.LockPrices(ctx, ids)
}
