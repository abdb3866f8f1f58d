package models

import (
	"errors"
	"fmt"
)

// PolicyRule is a CEL expression that rejects an operation when it evaluates to true.
type PolicyRule struct {
	Name       string `json:"name" db:"name"`
	Expression string `json:"expression" db:"expression"`
	Message    string `json:"message,omitempty" db:"message"`
}

// Seed is the static configuration loaded once at start-up.
type Seed struct {
	Accounts  []Account    `json:"accounts"`
	RatePairs []RatePair   `json:"rate_pairs"`
	Policies  []PolicyRule `json:"policies,omitempty"`
}

// Validate checks the field types described for accounts and rate pairs.
func (s Seed) Validate() error {
	var errs []error
	for i, a := range s.Accounts {
		if a.ID == "" {
			errs = append(errs, fmt.Errorf("account #%d: empty id", i))
		}
		if len(a.Currency) != 3 {
			errs = append(errs, fmt.Errorf("account %q: invalid currency %q", a.ID, a.Currency))
		}
	}
	for _, p := range s.RatePairs {
		if len(p.From) != 3 || len(p.To) != 3 {
			errs = append(errs, fmt.Errorf("rate pair %s: invalid currency", p.Key()))
		}
		if !p.Rate.IsPositive() {
			errs = append(errs, fmt.Errorf("rate pair %s: rate must be positive", p.Key()))
		}
	}
	for i, r := range s.Policies {
		if r.Name == "" || r.Expression == "" {
			errs = append(errs, fmt.Errorf("policy #%d: name and expression are required", i))
		}
	}
	return errors.Join(errs...)
}
