package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-ledger-operations/internal/logger"
	"github.com/sbilibin2017/gw-ledger-operations/internal/models"
)

// SeedPostgresRepository reads the static configuration tables.
type SeedPostgresRepository struct {
	db *sqlx.DB
}

// NewSeedPostgresRepository creates a repository over an open connection.
func NewSeedPostgresRepository(db *sqlx.DB) *SeedPostgresRepository {
	return &SeedPostgresRepository{db: db}
}

// ListAccounts returns all seeded accounts.
func (r *SeedPostgresRepository) ListAccounts(ctx context.Context) ([]models.Account, error) {
	query := `
		SELECT id, display_name, currency, balance
		FROM accounts
		ORDER BY id
	`

	var accounts []models.Account
	err := sqlx.SelectContext(ctx, r.db, &accounts, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(accounts),
		"error", err,
	)

	return accounts, err
}

// ListRatePairs returns all seeded rate pairs.
func (r *SeedPostgresRepository) ListRatePairs(ctx context.Context) ([]models.RatePair, error) {
	query := `
		SELECT from_currency, to_currency, rate
		FROM rate_pairs
		ORDER BY from_currency, to_currency
	`

	var pairs []models.RatePair
	err := sqlx.SelectContext(ctx, r.db, &pairs, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(pairs),
		"error", err,
	)

	return pairs, err
}

// ListPolicies returns the enabled policy rules in evaluation order.
func (r *SeedPostgresRepository) ListPolicies(ctx context.Context) ([]models.PolicyRule, error) {
	query := `
		SELECT name, expression, message
		FROM policy_rules
		WHERE enabled
		ORDER BY position, name
	`

	var rules []models.PolicyRule
	err := sqlx.SelectContext(ctx, r.db, &rules, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(rules),
		"error", err,
	)

	return rules, err
}

// LoadSeed reads accounts, rate pairs and policies.
func (r *SeedPostgresRepository) LoadSeed(ctx context.Context) (models.Seed, error) {
	accounts, err := r.ListAccounts(ctx)
	if err != nil {
		return models.Seed{}, err
	}
	pairs, err := r.ListRatePairs(ctx)
	if err != nil {
		return models.Seed{}, err
	}
	policies, err := r.ListPolicies(ctx)
	if err != nil {
		return models.Seed{}, err
	}
	return models.Seed{Accounts: accounts, RatePairs: pairs, Policies: policies}, nil
}
