package services

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/sbilibin2017/gw-ledger-operations/internal/models"
	"github.com/shopspring/decimal"
)

// RatePairReader provides the seeded base rates.
type RatePairReader interface {
	GetRatePair(from, to models.CurrencyCode) (decimal.Decimal, bool)
	ListRatePairs() []models.RatePair
}

// RandomSource yields uniform values in [0, 1).
type RandomSource interface {
	Float64() float64
}

// DefaultJitterSpread is the maximum absolute jitter added to a resolved rate.
var DefaultJitterSpread = decimal.RequireFromString("0.01")

// RateTable resolves conversion rates and applies simulated market jitter.
//
// The jitter is recomputed on every call and is not a real market feed, so
// Rate(a, b) * Rate(b, a) is not guaranteed to equal 1.
type RateTable struct {
	pairs  RatePairReader
	rnd    RandomSource
	spread decimal.Decimal
}

// RateTableOption configures a RateTable.
type RateTableOption func(*RateTable)

// WithRandomSource pins the jitter source, e.g. for deterministic tests.
func WithRandomSource(rnd RandomSource) RateTableOption {
	return func(t *RateTable) { t.rnd = rnd }
}

// WithJitterSpread sets the maximum absolute jitter. Zero disables jitter.
func WithJitterSpread(spread decimal.Decimal) RateTableOption {
	return func(t *RateTable) { t.spread = spread.Abs() }
}

// NewRateTable creates a rate table over the seeded pairs.
// Without WithRandomSource the auto-seeded math/rand/v2 generator is used.
func NewRateTable(pairs RatePairReader, opts ...RateTableOption) *RateTable {
	t := &RateTable{
		pairs:  pairs,
		rnd:    entropySource{},
		spread: DefaultJitterSpread,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// BaseRate resolves a rate without jitter: the direct pair first, then the
// inverse of the reverse pair.
func (t *RateTable) BaseRate(from, to models.CurrencyCode) (decimal.Decimal, error) {
	if rate, ok := t.pairs.GetRatePair(from, to); ok && rate.IsPositive() {
		return rate, nil
	}
	if reverse, ok := t.pairs.GetRatePair(to, from); ok && reverse.IsPositive() {
		return decimal.NewFromInt(1).Div(reverse), nil
	}
	return decimal.Zero, newOperationError(ErrRateUnavailable, models.PairKey(from, to),
		fmt.Sprintf("exchange rate unavailable for %s/%s", from, to))
}

// Rate resolves the rate for the pair and adds uniform jitter in [-spread, +spread).
// When jitter would make the rate non-positive the base rate is returned.
func (t *RateTable) Rate(from, to models.CurrencyCode) (decimal.Decimal, error) {
	base, err := t.BaseRate(from, to)
	if err != nil {
		return decimal.Zero, err
	}
	if t.spread.IsZero() {
		return base, nil
	}

	offset := decimal.NewFromFloat(2*t.rnd.Float64() - 1).Mul(t.spread)
	rate := base.Add(offset)
	if !rate.IsPositive() {
		return base, nil
	}
	return rate, nil
}

// ListBaseRates returns the seeded pairs.
func (t *RateTable) ListBaseRates() []models.RatePair {
	return t.pairs.ListRatePairs()
}

type entropySource struct{}

func (entropySource) Float64() float64 {
	return rand.Float64()
}

// SeededSource is a deterministic generator that is safe for concurrent use.
type SeededSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSeededSource creates a PCG generator from seed.
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Float64 implements RandomSource.
func (s *SeededSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}
