package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"
	"trendx-service/internal/models"
	"trendx-service/internal/repository"

	"github.com/redis/go-redis/v9"
)

const productsAllKey = "products:all"

// CachedProductRepository serves the product list from Redis and drops the
// cached list on every product write. Redis failures fall through to the
// underlying repository.
type CachedProductRepository struct {
	realRepo repository.ProductRepository
	redis    *redis.Client
	ttl      time.Duration
	logger   *slog.Logger
}

func NewCachedProductRepository(realRepo repository.ProductRepository, rdb *redis.Client, logger *slog.Logger) *CachedProductRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedProductRepository{
		realRepo: realRepo,
		redis:    rdb,
		ttl:      5 * time.Minute,
		logger:   logger.With("component", "product_cache", "layer", "cache"),
	}
}

func (c *CachedProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	data, err := c.redis.Get(ctx, productsAllKey).Bytes()

	switch {
	case err == nil:
		var products []models.Product
		uerr := json.Unmarshal(data, &products)
		if uerr == nil {
			return products, nil
		}
		c.logger.WarnContext(ctx, "failed to unmarshal cached products, continuing with store", "error", uerr)

	case errors.Is(err, redis.Nil):

	default:
		c.logger.WarnContext(ctx, "redis error, continuing with store", "error", err)
	}

	products, err := c.realRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	jsonData, err := json.Marshal(products)
	if err != nil {
		c.logger.WarnContext(ctx, "failed to marshal products", "error", err)
		return products, nil
	}

	if err := c.redis.Set(ctx, productsAllKey, jsonData, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "failed to cache products", "error", err)
	}

	return products, nil
}

func (c *CachedProductRepository) Create(ctx context.Context, product *models.Product) error {
	if err := c.realRepo.Create(ctx, product); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *CachedProductRepository) Delete(ctx context.Context, id string) error {
	err := c.realRepo.Delete(ctx, id)
	if err == nil {
		c.invalidate(ctx)
	}
	return err
}

func (c *CachedProductRepository) Count(ctx context.Context) (int64, error) {
	return c.realRepo.Count(ctx)
}

func (c *CachedProductRepository) DeleteAll(ctx context.Context) error {
	err := c.realRepo.DeleteAll(ctx)
	c.invalidate(ctx)
	return err
}

func (c *CachedProductRepository) invalidate(ctx context.Context) {
	if err := c.redis.Del(ctx, productsAllKey).Err(); err != nil {
		c.logger.WarnContext(ctx, "failed to delete products cache", "key", productsAllKey, "error", err)
	}
}
