package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-ledger-operations/internal/logger"
	"github.com/sbilibin2017/gw-ledger-operations/internal/models"
	"github.com/shopspring/decimal"
)

// ErrRatePairNotCached is returned when a pair has no (unexpired) cache entry.
var ErrRatePairNotCached = errors.New("rate pair not found in cache")

// RatePairCacheRepository keeps the last rates fetched from the exchanger in Redis.
type RatePairCacheRepository struct {
	client redis.UniversalClient
	exp    time.Duration // expiration duration for cached rates
}

// NewRatePairCacheRepository creates a new repository instance with optional TTL.
func NewRatePairCacheRepository(client redis.UniversalClient, expiration time.Duration) *RatePairCacheRepository {
	return &RatePairCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func rateCacheKey(from, to models.CurrencyCode) string {
	return fmt.Sprintf("rate_pair:%s:%s", from, to)
}

// GetRatePair fetches a cached rate.
func (r *RatePairCacheRepository) GetRatePair(ctx context.Context, from, to models.CurrencyCode) (models.RatePair, error) {
	key := rateCacheKey(from, to)

	val, err := r.client.Get(ctx, key).Result()
	logger.Log.Debugw("get", "key", key, "result", val, "error", err)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.RatePair{}, fmt.Errorf("%w: %s", ErrRatePairNotCached, models.PairKey(from, to))
		}
		return models.RatePair{}, err
	}

	rate, err := decimal.NewFromString(val)
	if err != nil {
		return models.RatePair{}, fmt.Errorf("cached rate %s: %w", key, err)
	}

	return models.RatePair{From: from, To: to, Rate: rate}, nil
}

// SetRatePairs caches the pairs in a single pipeline.
func (r *RatePairCacheRepository) SetRatePairs(ctx context.Context, pairs []models.RatePair) error {
	_, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, p := range pairs {
			pipe.Set(ctx, rateCacheKey(p.From, p.To), p.Rate.String(), r.exp)
		}
		return nil
	})

	logger.Log.Debugw("set", "pairs", len(pairs), "error", err)
	return err
}

// GetRatePairs fetches every "FROM-TO" key from the cache. The first miss aborts.
func (r *RatePairCacheRepository) GetRatePairs(ctx context.Context, keys []string) ([]models.RatePair, error) {
	pairs := make([]models.RatePair, 0, len(keys))
	for _, key := range keys {
		from, to, err := models.ParsePairKey(key)
		if err != nil {
			return nil, err
		}
		p, err := r.GetRatePair(ctx, from, to)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}
