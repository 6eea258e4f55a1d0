// Package redis кеширует записи каталога по схеме cache-aside.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	productKeyPrefix = "catalog:product:"
	courtKeyPrefix   = "catalog:court:"
)

// CachedCatalog оборачивает CatalogReader и кеширует товары и корты.
// Ошибки Redis не прерывают чтение: запрос уходит в основное хранилище.
type CachedCatalog struct {
	next   domain.CatalogReader
	client redis.Cmdable
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedCatalog создает новый CachedCatalog
func NewCachedCatalog(next domain.CatalogReader, client redis.Cmdable, ttl time.Duration, logger *zap.Logger) *CachedCatalog {
	return &CachedCatalog{next: next, client: client, ttl: ttl, logger: logger}
}

// GetProduct возвращает товар из кеша или из хранилища
func (c *CachedCatalog) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	key := productKeyPrefix + id

	product := &domain.Product{}
	if c.lookup(ctx, key, product) {
		return product, nil
	}

	product, err := c.next.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, product)
	return product, nil
}

// GetCourt возвращает корт из кеша или из хранилища
func (c *CachedCatalog) GetCourt(ctx context.Context, id string) (*domain.Court, error) {
	key := courtKeyPrefix + id

	court := &domain.Court{}
	if c.lookup(ctx, key, court) {
		return court, nil
	}

	court, err := c.next.GetCourt(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, court)
	return court, nil
}

// InvalidateProduct удаляет товар из кеша
func (c *CachedCatalog) InvalidateProduct(ctx context.Context, id string) error {
	return c.client.Del(ctx, productKeyPrefix+id).Err()
}

// InvalidateCourt удаляет корт из кеша
func (c *CachedCatalog) InvalidateCourt(ctx context.Context, id string) error {
	return c.client.Del(ctx, courtKeyPrefix+id).Err()
}

func (c *CachedCatalog) lookup(ctx context.Context, key string, dest any) bool {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("catalog cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		c.logger.Warn("catalog cache entry is corrupted", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *CachedCatalog) store(ctx context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("failed to encode catalog cache entry", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("catalog cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// NoopInvalidator используется, когда кеш каталога не настроен
type NoopInvalidator struct{}

// InvalidateProduct ничего не делает
func (NoopInvalidator) InvalidateProduct(context.Context, string) error { return nil }

// InvalidateCourt ничего не делает
func (NoopInvalidator) InvalidateCourt(context.Context, string) error { return nil }
