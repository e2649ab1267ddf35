package redis

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/momozvault/go-backend/internal/cfg"
	"github.com/momozvault/go-backend/internal/domain"
	"github.com/momozvault/go-backend/internal/repository/redis/converter"
	"github.com/momozvault/go-backend/pkg/clients"
	"github.com/momozvault/go-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore backs a go-redis client with an in-process map by
// short-circuiting the process hook, so repo tests need no server.
// Only the commands the repos issue are handled.
type memoryStore struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: map[string]string{}}
}

func (s *memoryStore) DialHook(next goredis.DialHook) goredis.DialHook { return next }

func (s *memoryStore) ProcessPipelineHook(next goredis.ProcessPipelineHook) goredis.ProcessPipelineHook {
	return next
}

func (s *memoryStore) ProcessHook(goredis.ProcessHook) goredis.ProcessHook {
	return func(ctx context.Context, cmd goredis.Cmder) error {
		s.mu.Lock()
		defer s.mu.Unlock()

		args := cmd.Args()
		switch strings.ToLower(fmt.Sprint(args[0])) {
		case "get":
			val, ok := s.data[fmt.Sprint(args[1])]
			if !ok {
				return goredis.Nil
			}
			cmd.(*goredis.StringCmd).SetVal(val)
		case "set":
			s.data[fmt.Sprint(args[1])] = argToString(args[2])
			cmd.(*goredis.StatusCmd).SetVal("OK")
		case "del":
			var removed int64
			for _, key := range args[1:] {
				if _, ok := s.data[fmt.Sprint(key)]; ok {
					delete(s.data, fmt.Sprint(key))
					removed++
				}
			}
			cmd.(*goredis.IntCmd).SetVal(removed)
		default:
			return fmt.Errorf("memoryStore: unsupported command %v", args[0])
		}

		return nil
	}
}

func argToString(arg any) string {
	if b, ok := arg.([]byte); ok {
		return string(b)
	}
	return fmt.Sprint(arg)
}

func (s *memoryStore) has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.data[key]
	return ok
}

func (s *memoryStore) put(key, val string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = val
}

func newTestCartRepo(store *memoryStore) *CartRepo {
	client := goredis.NewClient(&goredis.Options{Addr: "localhost:6379"})
	client.AddHook(store)

	return NewCartRepo(
		&clients.RedisClient{Client: client},
		&converter.CartConverterImpl{},
		&cfg.RedisCfg{CartTTL: time.Minute, ProductTTL: time.Minute},
		logger.NewNop(),
	)
}

func snapshotCart() *domain.Cart {
	cart := domain.NewCart()
	cart.Add(&domain.Product{ID: "p1", Name: "Oud Royale", PriceUGX: 85_000, PriceKES: 3_200})
	cart.Add(&domain.Product{ID: "p1"})
	cart.Add(&domain.Product{ID: "p2", Name: "Musk Noir", PriceUGX: 40_000, PriceKES: 1_500})
	return cart
}

func TestCartRepo_SaveLoadRoundTrip(t *testing.T) {
	repo := newTestCartRepo(newMemoryStore())
	ctx := context.Background()
	cart := snapshotCart()

	require.NoError(t, repo.Save(ctx, "visitor-1", cart))

	loaded, err := repo.Load(ctx, "visitor-1")

	require.NoError(t, err)
	assert.Equal(t, cart.Lines, loaded.Lines)
}

func TestCartRepo_MalformedSnapshotLoadsEmpty(t *testing.T) {
	store := newMemoryStore()
	store.put("cart:visitor-1", "{not json")
	repo := newTestCartRepo(store)

	loaded, err := repo.Load(context.Background(), "visitor-1")

	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
	assert.False(t, store.has("cart:visitor-1"), "corrupt snapshot must be discarded")
}

func TestCartRepo_MissingSnapshotLoadsEmpty(t *testing.T) {
	repo := newTestCartRepo(newMemoryStore())

	loaded, err := repo.Load(context.Background(), "never-seen")

	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func TestCartRepo_DeleteKeepsCurrencyPreference(t *testing.T) {
	store := newMemoryStore()
	repo := newTestCartRepo(store)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "visitor-1", snapshotCart()))
	require.NoError(t, repo.SaveCurrency(ctx, "visitor-1", domain.CurrencyKES))

	require.NoError(t, repo.Delete(ctx, "visitor-1"))

	loaded, err := repo.Load(ctx, "visitor-1")
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())

	currency, err := repo.LoadCurrency(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, domain.CurrencyKES, currency)
}

func TestCartRepo_UnknownStoredCurrencyFallsBack(t *testing.T) {
	store := newMemoryStore()
	store.put("cart:visitor-1:currency", "EUR")
	repo := newTestCartRepo(store)

	currency, err := repo.LoadCurrency(context.Background(), "visitor-1")

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCurrency, currency)
}
