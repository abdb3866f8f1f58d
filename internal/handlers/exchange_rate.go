package handlers

//go:generate mockgen -source=exchange_rate.go -destination=exchange_rate_mock.go -package=handlers

import (
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-ledger-operations/internal/models"
	"github.com/sbilibin2017/gw-ledger-operations/internal/services"
	"github.com/shopspring/decimal"
)

// ExchangeRatesReader lists the seeded base rates.
type ExchangeRatesReader interface {
	ListBaseRates() []models.RatePair
}

// ExchangeQuoter previews an exchange at the current rate.
type ExchangeQuoter interface {
	Quote(from, to models.CurrencyCode, amount decimal.Decimal) (models.ExchangeQuote, error)
}

// RatesResponse maps "FROM-TO" to the base rate
// swagger:model RatesResponse
type RatesResponse struct {
	Rates map[string]decimal.Decimal `json:"rates"`
}

// NewGetExchangeRatesHandler returns the seeded base rates without jitter.
// @Summary Get exchange rates
// @Description Returns the seeded base rates keyed by FROM-TO
// @Tags exchange
// @Produce json
// @Success 200 {object} handlers.RatesResponse "Exchange rates"
// @Router /exchange/rates [get]
func NewGetExchangeRatesHandler(reader ExchangeRatesReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pairs := reader.ListBaseRates()
		rates := make(map[string]decimal.Decimal, len(pairs))
		for _, p := range pairs {
			rates[p.Key()] = p.Rate
		}
		writeJSON(w, http.StatusOK, RatesResponse{Rates: rates})
	}
}

// NewGetExchangeQuoteHandler previews a conversion. Every call re-samples the jitter.
// @Summary Quote an exchange
// @Description Converts an amount at the current jittered rate without executing an exchange
// @Tags exchange
// @Produce json
// @Param from query string true "Source currency"
// @Param to query string true "Target currency"
// @Param amount query string true "Amount to convert"
// @Success 200 {object} models.ExchangeQuote "Quote"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount or currency"
// @Failure 422 {object} handlers.ErrorResponse "Exchange rate unavailable"
// @Router /exchange/quote [get]
func NewGetExchangeQuoteHandler(quoter ExchangeQuoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		from := models.NormalizeCurrency(q.Get("from"))
		to := models.NormalizeCurrency(q.Get("to"))
		if from == "" || to == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "from and to are required"})
			return
		}

		amount, err := services.ParseAmount(q.Get("amount"))
		if err != nil || !amount.IsPositive() {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: services.ErrInvalidAmount.Error()})
			return
		}

		quote, err := quoter.Quote(from, to, amount)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrRateUnavailable):
				writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: services.ErrRateUnavailable.Error()})
			case errors.Is(err, services.ErrInvalidAmount):
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: services.ErrInvalidAmount.Error()})
			default:
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		writeJSON(w, http.StatusOK, quote)
	}
}
