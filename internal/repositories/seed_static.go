package repositories

import (
	"github.com/sbilibin2017/gw-ledger-operations/internal/models"
	"github.com/shopspring/decimal"
)

// DefaultSeed returns the demo accounts and rate pairs used when no seed source is configured.
func DefaultSeed() models.Seed {
	return models.Seed{
		Accounts: []models.Account{
			{ID: "1", DisplayName: "Premium Checking", Currency: models.USD, Balance: decimal.RequireFromString("12467.89")},
			{ID: "2", DisplayName: "Savings Account", Currency: models.USD, Balance: decimal.RequireFromString("25890.45")},
			{ID: "3", DisplayName: "Euro Account", Currency: models.EUR, Balance: decimal.RequireFromString("8750.30")},
			{ID: "4", DisplayName: "Business Account", Currency: models.USD, Balance: decimal.RequireFromString("45120.33")},
		},
		RatePairs: []models.RatePair{
			pair(models.USD, models.EUR, "0.85"),
			pair(models.USD, models.GBP, "0.73"),
			pair(models.USD, models.JPY, "110.25"),
			pair(models.USD, models.CAD, "1.25"),
			pair(models.USD, models.AUD, "1.35"),
			pair(models.USD, models.CHF, "0.92"),
			pair(models.USD, models.CNY, "6.45"),
			pair(models.EUR, models.USD, "1.18"),
			pair(models.EUR, models.GBP, "0.86"),
			pair(models.GBP, models.USD, "1.37"),
			pair(models.GBP, models.EUR, "1.16"),
		},
	}
}

func pair(from, to models.CurrencyCode, rate string) models.RatePair {
	return models.RatePair{From: from, To: to, Rate: decimal.RequireFromString(rate)}
}
