package services

//go:generate mockgen -source=refresh.go -destination=refresh_mock.go -package=services

import (
	"context"

	"github.com/sbilibin2017/gw-ledger-operations/internal/logger"
	"github.com/sbilibin2017/gw-ledger-operations/internal/models"
)

// RatePairFetcher reads live rates from the exchanger.
type RatePairFetcher interface {
	FetchRatePairs(ctx context.Context, keys []string) ([]models.RatePair, error)
}

// RatePairCache remembers the last fetched rates.
type RatePairCache interface {
	SetRatePairs(ctx context.Context, pairs []models.RatePair) error
	GetRatePairs(ctx context.Context, keys []string) ([]models.RatePair, error)
}

// RatePairRefresher overrides seeded pairs with exchanger rates once at start-up.
type RatePairRefresher struct {
	fetcher RatePairFetcher
	cache   RatePairCache
	keys    []string
}

// NewRatePairRefresher creates a refresher for keys ("FROM-TO"). cache may be nil.
func NewRatePairRefresher(fetcher RatePairFetcher, cache RatePairCache, keys []string) *RatePairRefresher {
	return &RatePairRefresher{fetcher: fetcher, cache: cache, keys: keys}
}

// Refresh returns seeded with the fetched pairs applied on top. When the exchanger
// is unreachable the cached pairs are used, and when both fail seeded is returned as is.
func (r *RatePairRefresher) Refresh(ctx context.Context, seeded []models.RatePair) []models.RatePair {
	if len(r.keys) == 0 {
		return seeded
	}

	fetched, err := r.fetcher.FetchRatePairs(ctx, r.keys)
	if err == nil {
		if r.cache != nil {
			if err := r.cache.SetRatePairs(ctx, fetched); err != nil {
				logger.Log.Warnw("failed to cache rate pairs", "error", err)
			}
		}
		return mergeRatePairs(seeded, fetched)
	}
	logger.Log.Warnw("exchanger unavailable, keeping seeded rate pairs", "error", err)

	if r.cache == nil {
		return seeded
	}
	cached, err := r.cache.GetRatePairs(ctx, r.keys)
	if err != nil {
		logger.Log.Warnw("no cached rate pairs", "error", err)
		return seeded
	}
	return mergeRatePairs(seeded, cached)
}

func mergeRatePairs(seeded, override []models.RatePair) []models.RatePair {
	index := make(map[string]int, len(seeded))
	out := make([]models.RatePair, len(seeded), len(seeded)+len(override))
	copy(out, seeded)
	for i, p := range out {
		index[p.Key()] = i
	}
	for _, p := range override {
		if !p.Rate.IsPositive() {
			continue
		}
		if i, ok := index[p.Key()]; ok {
			out[i] = p
			continue
		}
		index[p.Key()] = len(out)
		out = append(out, p)
	}
	return out
}
