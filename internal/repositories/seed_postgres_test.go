package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-ledger-operations/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

const (
	accountsQuery = "SELECT id, display_name, currency, balance FROM accounts ORDER BY id"
	pairsQuery    = "SELECT from_currency, to_currency, rate FROM rate_pairs ORDER BY from_currency, to_currency"
	policiesQuery = "SELECT name, expression, message FROM policy_rules WHERE enabled ORDER BY position, name"
)

func TestSeedPostgresRepository_LoadSeed(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSeedPostgresRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(accountsQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "display_name", "currency", "balance"}).
			AddRow("1", "Premium Checking", "USD", "12467.89").
			AddRow("3", "Euro Account", "EUR", "8750.30"))
	mock.ExpectQuery(regexp.QuoteMeta(pairsQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"from_currency", "to_currency", "rate"}).
			AddRow("USD", "EUR", "0.85000000"))
	mock.ExpectQuery(regexp.QuoteMeta(policiesQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"name", "expression", "message"}).
			AddRow("limit", "amount > 5000.0", "Amount above limit"))

	seed, err := repo.LoadSeed(context.Background())
	require.NoError(t, err)

	require.Len(t, seed.Accounts, 2)
	assert.Equal(t, "1", seed.Accounts[0].ID)
	assert.Equal(t, "Premium Checking", seed.Accounts[0].DisplayName)
	assert.Equal(t, models.USD, seed.Accounts[0].Currency)
	assert.Equal(t, models.EUR, seed.Accounts[1].Currency)
	assert.True(t, decimal.RequireFromString("8750.30").Equal(seed.Accounts[1].Balance))

	require.Len(t, seed.RatePairs, 1)
	assert.Equal(t, "USD-EUR", seed.RatePairs[0].Key())
	assert.True(t, decimal.RequireFromString("0.85").Equal(seed.RatePairs[0].Rate))

	require.Len(t, seed.Policies, 1)
	assert.Equal(t, "limit", seed.Policies[0].Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedPostgresRepository_LoadSeed_Errors(t *testing.T) {
	dbErr := errors.New("connection reset")

	tests := []struct {
		name  string
		setup func(mock sqlmock.Sqlmock)
	}{
		{
			name: "accounts_query_fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(accountsQuery)).WillReturnError(dbErr)
			},
		},
		{
			name: "rate_pairs_query_fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(accountsQuery)).
					WillReturnRows(sqlmock.NewRows([]string{"id", "display_name", "currency", "balance"}))
				mock.ExpectQuery(regexp.QuoteMeta(pairsQuery)).WillReturnError(dbErr)
			},
		},
		{
			name: "policies_query_fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(accountsQuery)).
					WillReturnRows(sqlmock.NewRows([]string{"id", "display_name", "currency", "balance"}))
				mock.ExpectQuery(regexp.QuoteMeta(pairsQuery)).
					WillReturnRows(sqlmock.NewRows([]string{"from_currency", "to_currency", "rate"}))
				mock.ExpectQuery(regexp.QuoteMeta(policiesQuery)).WillReturnError(dbErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.setup(mock)

			_, err := NewSeedPostgresRepository(db).LoadSeed(context.Background())
			assert.ErrorIs(t, err, dbErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
