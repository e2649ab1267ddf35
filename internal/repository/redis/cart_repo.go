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

// CartRepo is the durable cart store: one JSON snapshot per cart token
// plus a currency preference key, both refreshed with the cart TTL on
// every write.
type CartRepo struct {
	client *clients.RedisClient
	conv   converter.CartConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCartRepo(client *clients.RedisClient, conv converter.CartConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CartRepo {
	return &CartRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// Load returns the stored cart. A missing key loads as an empty cart;
// a snapshot that no longer decodes is discarded and also loads empty,
// so a bad write can never wedge the cart.
func (r *CartRepo) Load(ctx context.Context, token string) (*domain.Cart, error) {
	data, err := r.client.Client.Get(ctx, r.cartKey(token)).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return domain.NewCart(), nil
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.CartRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		r.logger.Warnf("Discarding malformed cart snapshot. token: %s, error: %v",
			token, e.Wrap(whereami.WhereAmI(), err))
		if err := r.client.Client.Del(context.Background(), r.cartKey(token)).Err(); err != nil {
			r.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return domain.NewCart(), nil
	}

	return r.conv.ToEntity(&model), nil
}

func (r *CartRepo) Save(ctx context.Context, token string, cart *domain.Cart) error {
	data, err := json.Marshal(r.conv.ToRedisModel(cart))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := r.client.Client.Set(ctx, r.cartKey(token), data, r.cfg.CartTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Delete drops the cart snapshot. The currency preference is a separate
// store and survives cart clears, including the post-checkout one.
func (r *CartRepo) Delete(ctx context.Context, token string) error {
	if err := r.client.Client.Del(ctx, r.cartKey(token)).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// LoadCurrency returns the stored display currency, defaulting when the
// key is absent or holds an unknown value.
func (r *CartRepo) LoadCurrency(ctx context.Context, token string) (domain.Currency, error) {
	val, err := r.client.Client.Get(ctx, r.currencyKey(token)).Result()
	if err != nil {
		if err == goredis.Nil {
			return domain.DefaultCurrency, nil
		}

		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	currency, err := domain.ParseCurrency(val)
	if err != nil {
		r.logger.Warnf("Discarding unknown stored currency. token: %s, value: %s", token, val)
		return domain.DefaultCurrency, nil
	}

	return currency, nil
}

func (r *CartRepo) SaveCurrency(ctx context.Context, token string, currency domain.Currency) error {
	if err := r.client.Client.Set(ctx, r.currencyKey(token), string(currency), r.cfg.CartTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (r *CartRepo) cartKey(token string) string {
	return fmt.Sprintf("cart:%s", token)
}

func (r *CartRepo) currencyKey(token string) string {
	return fmt.Sprintf("cart:%s:currency", token)
}
