package services

import (
	"errors"
	"testing"

	"github.com/sbilibin2017/gw-ledger-operations/internal/models"
	"github.com/sbilibin2017/gw-ledger-operations/internal/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource float64

func (s fixedSource) Float64() float64 { return float64(s) }

func newTestRateTable(opts ...RateTableOption) *RateTable {
	return NewRateTable(repositories.NewRatePairMemoryRepository(repositories.DefaultSeed().RatePairs), opts...)
}

func TestRateTable_Rate_JitterBounds(t *testing.T) {
	table := newTestRateTable()
	low := decimal.RequireFromString("0.84")
	high := decimal.RequireFromString("0.86")

	for i := 0; i < 1000; i++ {
		rate, err := table.Rate(models.USD, models.EUR)
		require.NoError(t, err)
		assert.True(t, rate.GreaterThanOrEqual(low), "rate %s below %s", rate, low)
		assert.True(t, rate.LessThanOrEqual(high), "rate %s above %s", rate, high)
	}
}

func TestRateTable_Rate_PinnedSource(t *testing.T) {
	tests := []struct {
		name     string
		source   fixedSource
		expected string
	}{
		{"midpoint_is_base", 0.5, "0.85"},
		{"lowest", 0, "0.84"},
		{"upper_quarter", 0.75, "0.855"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := newTestRateTable(WithRandomSource(tt.source))
			rate, err := table.Rate(models.USD, models.EUR)
			require.NoError(t, err)
			assert.True(t, rate.Equal(decimal.RequireFromString(tt.expected)), "got %s", rate)
		})
	}
}

func TestRateTable_Rate_NoJitter(t *testing.T) {
	table := newTestRateTable(WithJitterSpread(decimal.Zero), WithRandomSource(fixedSource(0)))

	rate, err := table.Rate(models.USD, models.JPY)
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("110.25")))
}

func TestRateTable_BaseRate_Inverse(t *testing.T) {
	table := newTestRateTable()

	rate, err := table.BaseRate(models.JPY, models.USD)
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(1).Div(decimal.RequireFromString("110.25"))))

	// direct pair wins over the inverse of the reverse pair
	rate, err = table.BaseRate(models.EUR, models.USD)
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("1.18")))
}

func TestRateTable_Rate_Unavailable(t *testing.T) {
	table := newTestRateTable()

	for _, pair := range [][2]models.CurrencyCode{
		{models.EUR, models.JPY},
		{models.USD, models.USD},
		{"XYZ", models.USD},
	} {
		_, err := table.Rate(pair[0], pair[1])
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrRateUnavailable))

		var opErr *OperationError
		require.True(t, errors.As(err, &opErr))
		assert.Equal(t, models.PairKey(pair[0], pair[1]), opErr.Field)
	}
}

func TestRateTable_Rate_NonPositiveGuard(t *testing.T) {
	pairs := repositories.NewRatePairMemoryRepository([]models.RatePair{
		{From: "AAA", To: "BBB", Rate: decimal.RequireFromString("0.005")},
	})
	table := NewRateTable(pairs, WithRandomSource(fixedSource(0)))

	rate, err := table.Rate("AAA", "BBB")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.005")))
}

func TestRateTable_RoundTripIsNotIdentity(t *testing.T) {
	table := newTestRateTable()

	forward, err := table.Rate(models.USD, models.EUR)
	require.NoError(t, err)
	backward, err := table.Rate(models.EUR, models.USD)
	require.NoError(t, err)

	// only resolvability is guaranteed
	assert.True(t, forward.IsPositive())
	assert.True(t, backward.IsPositive())
}

func TestSeededSource_Deterministic(t *testing.T) {
	a := NewSeededSource(42)
	b := NewSeededSource(42)
	for i := 0; i < 10; i++ {
		va, vb := a.Float64(), b.Float64()
		assert.Equal(t, va, vb)
		assert.GreaterOrEqual(t, va, 0.0)
		assert.Less(t, va, 1.0)
	}
}

func TestRateTable_ListBaseRates(t *testing.T) {
	table := newTestRateTable()
	pairs := table.ListBaseRates()
	require.Len(t, pairs, 11)
	assert.Equal(t, "EUR-GBP", pairs[0].Key())
}
