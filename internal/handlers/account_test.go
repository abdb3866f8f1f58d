package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-ledger-operations/internal/models"
	"github.com/sbilibin2017/gw-ledger-operations/internal/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checking := models.Account{ID: "1", DisplayName: "Premium Checking", Currency: models.USD, Balance: decimal.RequireFromString("12467.89")}

	reader := NewMockAccountReader(ctrl)

	r := chi.NewRouter()
	r.Get("/accounts", NewListAccountsHandler(reader))
	r.Get("/accounts/{id}", NewGetAccountHandler(reader))

	t.Run("list", func(t *testing.T) {
		reader.EXPECT().List().Return([]models.Account{checking})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/accounts", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var got AccountsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got.Accounts, 1)
		assert.Equal(t, "Premium Checking", got.Accounts[0].DisplayName)
		assert.True(t, got.Accounts[0].Balance.Equal(checking.Balance))
	})

	t.Run("get", func(t *testing.T) {
		reader.EXPECT().Lookup("1").Return(checking, nil)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/accounts/1", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var got models.Account
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, models.USD, got.Currency)
	})

	t.Run("not_found", func(t *testing.T) {
		reader.EXPECT().Lookup("9").Return(models.Account{}, repositories.ErrAccountNotFound)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/accounts/9", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Account not found"}`, rec.Body.String())
	})
}
