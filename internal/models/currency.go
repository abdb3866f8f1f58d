package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyCode is a 3-letter ISO currency code (e.g. USD, EUR).
type CurrencyCode string

// Supported currency codes
const (
	USD CurrencyCode = "USD"
	EUR CurrencyCode = "EUR"
	GBP CurrencyCode = "GBP"
	JPY CurrencyCode = "JPY"
	CAD CurrencyCode = "CAD"
	AUD CurrencyCode = "AUD"
	CHF CurrencyCode = "CHF"
	CNY CurrencyCode = "CNY"
)

var currencySymbols = map[CurrencyCode]string{
	USD: "$",
	EUR: "€",
	GBP: "£",
	JPY: "¥",
	CAD: "C$",
	AUD: "A$",
	CHF: "CHF",
	CNY: "¥",
}

// NormalizeCurrency trims and upper-cases a currency code.
func NormalizeCurrency(code string) CurrencyCode {
	return CurrencyCode(strings.ToUpper(strings.TrimSpace(code)))
}

// CurrencySymbol returns the display symbol for a currency code.
// Unknown codes are rendered as the code itself.
func CurrencySymbol(code CurrencyCode) string {
	if s, ok := currencySymbols[code]; ok {
		return s
	}
	return string(code)
}

// FormatMoney renders an amount with its currency symbol and two decimals, e.g. $120.50.
func FormatMoney(amount decimal.Decimal, code CurrencyCode) string {
	return fmt.Sprintf("%s%s", CurrencySymbol(code), amount.StringFixed(2))
}
