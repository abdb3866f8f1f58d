package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RatePair is a seeded conversion rate between two currencies.
type RatePair struct {
	From CurrencyCode    `json:"from" db:"from_currency"`
	To   CurrencyCode    `json:"to" db:"to_currency"`
	Rate decimal.Decimal `json:"rate" db:"rate"`
}

// Key returns the FROM-TO key of the pair.
func (p RatePair) Key() string {
	return PairKey(p.From, p.To)
}

// PairKey builds the lookup key for a currency pair, e.g. USD-EUR.
func PairKey(from, to CurrencyCode) string {
	return string(from) + "-" + string(to)
}

// ParsePairKey splits a FROM-TO key into its currencies.
func ParsePairKey(key string) (from, to CurrencyCode, err error) {
	parts := strings.Split(strings.TrimSpace(key), "-")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid currency pair %q", key)
	}
	return NormalizeCurrency(parts[0]), NormalizeCurrency(parts[1]), nil
}
