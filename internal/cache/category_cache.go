package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bagdasarian/club-shop/internal/domain"
	"github.com/bagdasarian/club-shop/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const categoriesAllKey = "categories:all"

func categoryKey(id int64) string {
	return fmt.Sprintf("category:%d", id)
}

type CachedCategoryRepository struct {
	realRepo repository.CategoryRepository
	store
}

func NewCachedCategoryRepository(
	realRepo repository.CategoryRepository,
	rdb *redis.Client,
	ttl time.Duration,
	log logrus.FieldLogger,
) *CachedCategoryRepository {
	return &CachedCategoryRepository{
		realRepo: realRepo,
		store: store{
			redis: rdb,
			ttl:   ttl,
			log:   log.WithField("cache", "categories"),
		},
	}
}

func (c *CachedCategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	if c.bypass(ctx) {
		return c.realRepo.GetByID(ctx, id)
	}

	key := categoryKey(id)

	var cached domain.Category
	switch c.load(ctx, key, &cached) {
	case hit:
		return &cached, nil
	case hitNotFound:
		return nil, domain.NewNotFoundError(fmt.Sprintf("category with id %d", id))
	}

	category, err := c.realRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.markNotFound(ctx, key)
		}
		return nil, err
	}

	c.save(ctx, key, category)
	return category, nil
}

func (c *CachedCategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	if c.bypass(ctx) {
		return c.realRepo.List(ctx)
	}

	var cached []*domain.Category
	if c.load(ctx, categoriesAllKey, &cached) == hit {
		return cached, nil
	}

	categories, err := c.realRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	c.saveList(ctx, categoriesAllKey, categories)
	return categories, nil
}

func (c *CachedCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	if err := c.realRepo.Create(ctx, category); err != nil {
		return err
	}

	c.invalidate(ctx, nil, categoriesAllKey, categoryKey(category.ID))
	return nil
}

// Delete сбрасывает и списки товаров: в них встроена категория
func (c *CachedCategoryRepository) Delete(ctx context.Context, id int64) error {
	if err := c.realRepo.Delete(ctx, id); err != nil {
		return err
	}

	c.invalidate(ctx, []string{productListsIndex}, categoriesAllKey, categoryKey(id))
	return nil
}
