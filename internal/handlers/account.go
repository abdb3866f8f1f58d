package handlers

//go:generate mockgen -source=account.go -destination=account_mock.go -package=handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-ledger-operations/internal/models"
)

// AccountReader exposes the seeded account directory.
type AccountReader interface {
	Lookup(id string) (models.Account, error)
	List() []models.Account
}

// AccountsResponse lists the seeded accounts
// swagger:model AccountsResponse
type AccountsResponse struct {
	Accounts []models.Account `json:"accounts"`
}

// NewListAccountsHandler returns every seeded account.
// @Summary List accounts
// @Description Returns the seeded accounts ordered by id
// @Tags accounts
// @Produce json
// @Success 200 {object} handlers.AccountsResponse "Accounts"
// @Router /accounts [get]
func NewListAccountsHandler(reader AccountReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, AccountsResponse{Accounts: reader.List()})
	}
}

// NewGetAccountHandler returns a single account.
// @Summary Get account
// @Tags accounts
// @Produce json
// @Param id path string true "Account id"
// @Success 200 {object} models.Account "Account"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Router /accounts/{id} [get]
func NewGetAccountHandler(reader AccountReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acc, err := reader.Lookup(chi.URLParam(r, "id"))
		if err != nil {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Account not found"})
			return
		}
		writeJSON(w, http.StatusOK, acc)
	}
}
