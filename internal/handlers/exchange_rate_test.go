package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-ledger-operations/internal/handlers"
	"github.com/sbilibin2017/gw-ledger-operations/internal/models"
	"github.com/sbilibin2017/gw-ledger-operations/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExchangeRatesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := handlers.NewMockExchangeRatesReader(ctrl)
	mockReader.EXPECT().ListBaseRates().Return([]models.RatePair{
		{From: models.USD, To: models.EUR, Rate: decimal.RequireFromString("0.85")},
		{From: models.USD, To: models.JPY, Rate: decimal.RequireFromString("110.25")},
	})

	rec := httptest.NewRecorder()
	handlers.NewGetExchangeRatesHandler(mockReader).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/exchange/rates", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"rates":{"USD-EUR":"0.85","USD-JPY":"110.25"}}`, rec.Body.String())
}

func TestGetExchangeQuoteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuoter := handlers.NewMockExchangeQuoter(ctrl)
	handler := handlers.NewGetExchangeQuoteHandler(mockQuoter)

	tests := []struct {
		name      string
		query     string
		mockSetup func()
		wantCode  int
		wantError string
	}{
		{
			name:  "success",
			query: "?from=usd&to=eur&amount=100",
			mockSetup: func() {
				mockQuoter.EXPECT().
					Quote(models.USD, models.EUR, gomock.Any()).
					DoAndReturn(func(from, to models.CurrencyCode, amount decimal.Decimal) (models.ExchangeQuote, error) {
						rate := decimal.RequireFromString("0.8512")
						return models.ExchangeQuote{
							FromCurrency:    from,
							ToCurrency:      to,
							Rate:            rate,
							Amount:          amount,
							ConvertedAmount: amount.Mul(rate).Round(2),
						}, nil
					})
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "missing_currency",
			query:     "?from=USD&amount=100",
			wantCode:  http.StatusBadRequest,
			wantError: "from and to are required",
		},
		{
			name:      "bad_amount",
			query:     "?from=USD&to=EUR&amount=abc",
			wantCode:  http.StatusBadRequest,
			wantError: services.ErrInvalidAmount.Error(),
		},
		{
			name:      "non_positive_amount",
			query:     "?from=USD&to=EUR&amount=-1",
			wantCode:  http.StatusBadRequest,
			wantError: services.ErrInvalidAmount.Error(),
		},
		{
			name:      "huge_exponent_amount",
			query:     "?from=USD&to=EUR&amount=1e50000000",
			wantCode:  http.StatusBadRequest,
			wantError: services.ErrInvalidAmount.Error(),
		},
		{
			name:      "too_many_fraction_digits",
			query:     "?from=USD&to=EUR&amount=0.000000001",
			wantCode:  http.StatusBadRequest,
			wantError: services.ErrInvalidAmount.Error(),
		},
		{
			name:  "rate_unavailable",
			query: "?from=EUR&to=JPY&amount=10",
			mockSetup: func() {
				mockQuoter.EXPECT().
					Quote(models.EUR, models.JPY, gomock.Any()).
					Return(models.ExchangeQuote{}, &services.OperationError{Err: services.ErrRateUnavailable, Field: "EUR-JPY"})
			},
			wantCode:  http.StatusUnprocessableEntity,
			wantError: services.ErrRateUnavailable.Error(),
		},
		{
			name:  "internal_error",
			query: "?from=EUR&to=USD&amount=10",
			mockSetup: func() {
				mockQuoter.EXPECT().
					Quote(models.EUR, models.USD, gomock.Any()).
					Return(models.ExchangeQuote{}, assert.AnError)
			},
			wantCode:  http.StatusInternalServerError,
			wantError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockSetup != nil {
				tt.mockSetup()
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/exchange/quote"+tt.query, nil))

			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantError != "" {
				var got handlers.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, tt.wantError, got.Error)
				return
			}

			var got models.ExchangeQuote
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, models.EUR, got.ToCurrency)
			assert.True(t, got.ConvertedAmount.Equal(decimal.RequireFromString("85.12")))
		})
	}
}
