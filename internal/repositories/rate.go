package repositories

import (
	"sort"

	"github.com/sbilibin2017/gw-ledger-operations/internal/models"
	"github.com/shopspring/decimal"
)

// RatePairMemoryRepository holds the seeded base rates keyed by FROM-TO.
type RatePairMemoryRepository struct {
	pairs map[string]models.RatePair
}

// NewRatePairMemoryRepository indexes the seeded pairs. Later duplicates win.
func NewRatePairMemoryRepository(pairs []models.RatePair) *RatePairMemoryRepository {
	m := make(map[string]models.RatePair, len(pairs))
	for _, p := range pairs {
		m[p.Key()] = p
	}
	return &RatePairMemoryRepository{pairs: m}
}

// GetRatePair returns the base rate for the pair if it was seeded.
func (r *RatePairMemoryRepository) GetRatePair(from, to models.CurrencyCode) (decimal.Decimal, bool) {
	p, ok := r.pairs[models.PairKey(from, to)]
	if !ok {
		return decimal.Zero, false
	}
	return p.Rate, true
}

// ListRatePairs returns the seeded pairs ordered by key.
func (r *RatePairMemoryRepository) ListRatePairs() []models.RatePair {
	out := make([]models.RatePair, 0, len(r.pairs))
	for _, p := range r.pairs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}
