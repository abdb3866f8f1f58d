package repositories

import (
	"errors"
	"sort"

	"github.com/sbilibin2017/gw-ledger-operations/internal/models"
)

var (
	// ErrAccountNotFound is returned when no account has the requested id.
	ErrAccountNotFound = errors.New("account not found")
)

// AccountMemoryRepository is a read-only account directory built from the seed.
type AccountMemoryRepository struct {
	accounts map[string]models.Account
}

// NewAccountMemoryRepository indexes the seeded accounts by id. Later duplicates win.
func NewAccountMemoryRepository(accounts []models.Account) *AccountMemoryRepository {
	m := make(map[string]models.Account, len(accounts))
	for _, a := range accounts {
		m[a.ID] = a
	}
	return &AccountMemoryRepository{accounts: m}
}

// Lookup returns the account with the given id.
func (r *AccountMemoryRepository) Lookup(id string) (models.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return models.Account{}, ErrAccountNotFound
	}
	return a, nil
}

// List returns all accounts ordered by id.
func (r *AccountMemoryRepository) List() []models.Account {
	out := make([]models.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
