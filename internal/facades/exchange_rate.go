package facades

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/gw-ledger-operations/internal/logger"
	"github.com/sbilibin2017/gw-ledger-operations/internal/models"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	"github.com/shopspring/decimal"
)

// ExchangeRatesGRPCFacade reads rate pairs from the exchanger service over gRPC.
type ExchangeRatesGRPCFacade struct {
	client pb.ExchangeServiceClient
}

// NewExchangeRatesGRPCFacade creates a new facade with a gRPC client.
func NewExchangeRatesGRPCFacade(client pb.ExchangeServiceClient) *ExchangeRatesGRPCFacade {
	return &ExchangeRatesGRPCFacade{client: client}
}

// GetExchangeRates fetches the rates the exchanger quotes against base and
// returns them as base->currency pairs. Non-positive rates and the base itself are skipped.
func (f *ExchangeRatesGRPCFacade) GetExchangeRates(
	ctx context.Context,
	base models.CurrencyCode,
) ([]models.RatePair, error) {
	resp, err := f.client.GetExchangeRates(ctx, &pb.Empty{})
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rates via gRPC", "error", err)
		return nil, err
	}

	pairs := make([]models.RatePair, 0, len(resp.Rates))
	for currency, rate := range resp.Rates {
		to := models.NormalizeCurrency(currency)
		if to == base || rate <= 0 {
			continue
		}
		pairs = append(pairs, models.RatePair{From: base, To: to, Rate: decimal.NewFromFloat32(rate)})
	}

	return pairs, nil
}

// GetRatePair fetches the exchange rate between two currencies.
func (f *ExchangeRatesGRPCFacade) GetRatePair(ctx context.Context, from, to models.CurrencyCode) (models.RatePair, error) {
	req := &pb.CurrencyRequest{
		FromCurrency: string(from),
		ToCurrency:   string(to),
	}

	resp, err := f.client.GetExchangeRateForCurrency(ctx, req)
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rate for currency via gRPC",
			"from", from, "to", to, "error", err)
		return models.RatePair{}, err
	}
	if resp.Rate <= 0 {
		return models.RatePair{}, fmt.Errorf("exchanger returned non-positive rate %v for %s", resp.Rate, models.PairKey(from, to))
	}

	return models.RatePair{From: from, To: to, Rate: decimal.NewFromFloat32(resp.Rate)}, nil
}

// FetchRatePairs fetches every configured "FROM-TO" pair. The first failure aborts the fetch.
func (f *ExchangeRatesGRPCFacade) FetchRatePairs(ctx context.Context, keys []string) ([]models.RatePair, error) {
	pairs := make([]models.RatePair, 0, len(keys))
	for _, key := range keys {
		from, to, err := models.ParsePairKey(key)
		if err != nil {
			return nil, err
		}
		p, err := f.GetRatePair(ctx, from, to)
		if err != nil {
			return nil, fmt.Errorf("fetch rate pair %s: %w", key, err)
		}
		pairs = append(pairs, p)
	}

	logger.Log.Infow("rate pairs fetched from exchanger", "count", len(pairs))
	return pairs, nil
}
