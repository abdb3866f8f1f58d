package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Outcome of an operation.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// Failure codes
const (
	CodeMissingField    = "MissingField"
	CodeInvalidAmount   = "InvalidAmount"
	CodeSameAccount     = "SameAccount"
	CodeUnknownAccount  = "UnknownAccount"
	CodeRateUnavailable = "RateUnavailable"
	CodePolicyViolation = "PolicyViolation"

	CodeUnsupportedOperation = "UnsupportedOperation"
)

// FailureReason describes why an operation was rejected.
type FailureReason struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"` // Offending field or policy name
	Message string `json:"message"`
}

// OperationDetails is the variant-specific part of a result.
type OperationDetails interface {
	details()
}

// TransferDetails is returned for transfers.
type TransferDetails struct {
	Destination string `json:"destination"`
	External    bool   `json:"external"`
	Description string `json:"description,omitempty"`
}

// ExchangeDetails is returned for exchanges.
type ExchangeDetails struct {
	FromCurrency CurrencyCode    `json:"fromCurrency"`
	ToCurrency   CurrencyCode    `json:"toCurrency"`
	Rate         decimal.Decimal `json:"rate"`
}

// BillPaymentDetails is returned for bill payments.
type BillPaymentDetails struct {
	Biller  string `json:"biller"`
	DueDate string `json:"dueDate,omitempty"`
}

// GoalContributionDetails is returned for goal contributions.
type GoalContributionDetails struct {
	GoalName         string          `json:"goalName,omitempty"`
	NewCurrentAmount decimal.Decimal `json:"newCurrentAmount"`
	TargetAmount     decimal.Decimal `json:"targetAmount"`
	RemainingAmount  decimal.Decimal `json:"remainingAmount"`
	MonthsRemaining  int64           `json:"monthsRemaining"`
	ProgressPercent  decimal.Decimal `json:"progressPercent"`
}

// GoalCreationDetails is returned for new savings goals.
type GoalCreationDetails struct {
	GoalName            string          `json:"goalName"`
	Category            string          `json:"category,omitempty"`
	TargetAmount        decimal.Decimal `json:"targetAmount"`
	TargetDate          string          `json:"targetDate"`
	MonthlyContribution decimal.Decimal `json:"monthlyContribution"`
	MonthsToGoal        int64           `json:"monthsToGoal"`
}

// ExpenseDetails is returned for recorded expenses.
type ExpenseDetails struct {
	Category    string `json:"category"`
	Description string `json:"description"`
}

func (TransferDetails) details()         {}
func (ExchangeDetails) details()         {}
func (BillPaymentDetails) details()      {}
func (GoalContributionDetails) details() {}
func (GoalCreationDetails) details()     {}
func (ExpenseDetails) details()          {}

// OperationResult is produced once per request and never mutated afterwards.
type OperationResult struct {
	ID             uuid.UUID        `json:"id"`
	Kind           OperationKind    `json:"kind"`
	Outcome        Outcome          `json:"outcome"`
	Reason         *FailureReason   `json:"reason,omitempty"`
	ComputedAmount decimal.Decimal  `json:"computedAmount"`
	Details        OperationDetails `json:"details,omitempty"`
	Message        string           `json:"message"` // Text reported to the notification sink
}

// Succeeded reports whether the operation succeeded.
func (r OperationResult) Succeeded() bool {
	return r.Outcome == OutcomeSuccess
}

// ExchangeQuote is a live preview of an exchange.
type ExchangeQuote struct {
	FromCurrency    CurrencyCode    `json:"fromCurrency"`
	ToCurrency      CurrencyCode    `json:"toCurrency"`
	Rate            decimal.Decimal `json:"rate"`
	Amount          decimal.Decimal `json:"amount"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
}
