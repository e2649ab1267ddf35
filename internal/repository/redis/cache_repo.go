package redis

import (
	"context"
	"encoding/json"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"github.com/jimlawless/whereami"
	"github.com/momozvault/go-backend/internal/cfg"
	"github.com/momozvault/go-backend/internal/domain"
	"github.com/momozvault/go-backend/internal/repository/redis/converter"
	"github.com/momozvault/go-backend/pkg/clients"
	"github.com/momozvault/go-backend/pkg/e"
	"github.com/momozvault/go-backend/pkg/logger"
)

// CacheRepo is the product read cache. Misses and decode failures never
// propagate as errors to reads; the database stays authoritative.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.ProductConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.ProductConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetProduct returns the cached product or (nil, nil) on a miss.
func (r *CacheRepo) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	data, err := r.client.Client.Get(ctx, r.productKey(id)).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}

		r.logger.Warnf("Redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.ProductRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		r.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		if err := r.client.Client.Del(context.Background(), r.productKey(id)).Err(); err != nil {
			r.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, nil
	}

	if model.ID != id {
		r.logger.Warnf("Cache ID mismatch: key_id: %s, model_id: %s", id, model.ID)
		if err := r.client.Client.Del(context.Background(), r.productKey(id)).Err(); err != nil {
			r.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, nil
	}

	return r.conv.ToEntity(&model), nil
}

// SetProduct caches the product with the configured TTL. Serialization
// and write failures are logged, never returned.
func (r *CacheRepo) SetProduct(ctx context.Context, product *domain.Product) error {
	data, err := json.Marshal(r.conv.ToRedisModel(product))
	if err != nil {
		r.logger.Warnf("Failed to marshal product for caching (Product ID: %s): %v",
			product.ID, e.Wrap(whereami.WhereAmI(), err))
		return nil
	}

	if err := r.client.Client.Set(ctx, r.productKey(product.ID), data, r.cfg.ProductTTL).Err(); err != nil {
		r.logger.Warnf("Redis SET failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

func (r *CacheRepo) DeleteProduct(ctx context.Context, id string) error {
	if err := r.client.Client.Del(ctx, r.productKey(id)).Err(); err != nil {
		r.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

func (r *CacheRepo) productKey(id string) string {
	return fmt.Sprintf("product:%s", id)
}
