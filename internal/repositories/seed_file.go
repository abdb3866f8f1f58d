package repositories

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sbilibin2017/gw-ledger-operations/internal/logger"
	"github.com/sbilibin2017/gw-ledger-operations/internal/models"
)

// LoadSeedFile reads accounts, rate pairs and policies from a JSON file.
func LoadSeedFile(path string) (models.Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Seed{}, fmt.Errorf("read seed file: %w", err)
	}

	var seed models.Seed
	if err := json.Unmarshal(data, &seed); err != nil {
		return models.Seed{}, fmt.Errorf("decode seed file %s: %w", path, err)
	}

	for i := range seed.Accounts {
		seed.Accounts[i].Currency = models.NormalizeCurrency(string(seed.Accounts[i].Currency))
	}
	for i := range seed.RatePairs {
		seed.RatePairs[i].From = models.NormalizeCurrency(string(seed.RatePairs[i].From))
		seed.RatePairs[i].To = models.NormalizeCurrency(string(seed.RatePairs[i].To))
	}

	logger.Log.Infow("seed file loaded",
		"path", path,
		"accounts", len(seed.Accounts),
		"rate_pairs", len(seed.RatePairs),
		"policies", len(seed.Policies),
	)

	return seed, nil
}
