package models

import "github.com/shopspring/decimal"

// Account is a read-only account record seeded at start-up.
type Account struct {
	ID          string          `json:"id" db:"id"`                     // Unique account identifier
	DisplayName string          `json:"display_name" db:"display_name"` // Name shown to the user, e.g. "Premium Checking"
	Currency    CurrencyCode    `json:"currency" db:"currency"`         // Currency the account is held in
	Balance     decimal.Decimal `json:"balance" db:"balance"`           // Balance snapshot, never changed by operations
}
