package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// OperationKind identifies an operation variant.
type OperationKind string

// Supported operation kinds
const (
	KindTransfer         OperationKind = "transfer"
	KindExchange         OperationKind = "exchange"
	KindBillPayment      OperationKind = "bill_payment"
	KindGoalContribution OperationKind = "goal_contribution"
	KindGoalCreation     OperationKind = "goal_creation"
	KindExpense          OperationKind = "expense"
)

// Transfer types
const (
	TransferInternal = "internal"
	TransferExternal = "external"
)

// OperationRequest is one of TransferRequest, ExchangeRequest, BillPaymentRequest,
// GoalContributionRequest, GoalCreationRequest or ExpenseRequest.
type OperationRequest interface {
	Kind() OperationKind
	operation()
}

// RawAmount is an amount as typed by the user. It is parsed during validation.
// JSON accepts a string, a number or null.
type RawAmount string

// UnmarshalJSON implements json.Unmarshaler.
func (a *RawAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = RawAmount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = RawAmount(n.String())
	return nil
}

// String returns the trimmed text.
func (a RawAmount) String() string {
	return strings.TrimSpace(string(a))
}

// IsEmpty reports whether no amount was supplied.
func (a RawAmount) IsEmpty() bool {
	return a.String() == ""
}

// TransferRequest moves money from one account to another internal account or an external reference.
type TransferRequest struct {
	FromAccount  string    `json:"fromAccount"`
	ToAccount    string    `json:"toAccount"`
	Amount       RawAmount `json:"amount"`
	Description  string    `json:"description,omitempty"`
	TransferType string    `json:"transferType,omitempty"` // internal (default) or external
}

// Kind implements OperationRequest.
func (TransferRequest) Kind() OperationKind { return KindTransfer }
func (TransferRequest) operation()          {}

// IsExternal reports whether the destination is an external reference.
func (r TransferRequest) IsExternal() bool {
	return strings.EqualFold(strings.TrimSpace(r.TransferType), TransferExternal)
}

// ExchangeRequest converts an amount from one currency to another.
// An empty FromCurrency defaults to the source account currency.
type ExchangeRequest struct {
	AccountID    string       `json:"accountId"`
	Amount       RawAmount    `json:"amount"`
	FromCurrency CurrencyCode `json:"fromCurrency,omitempty"`
	ToCurrency   CurrencyCode `json:"toCurrency"`
}

// Kind implements OperationRequest.
func (ExchangeRequest) Kind() OperationKind { return KindExchange }
func (ExchangeRequest) operation()          {}

// BillPaymentRequest schedules a payment to a biller.
type BillPaymentRequest struct {
	AccountID string    `json:"accountId"`
	Amount    RawAmount `json:"amount"`
	Biller    string    `json:"biller"`
	DueDate   string    `json:"dueDate,omitempty"`
}

// Kind implements OperationRequest.
func (BillPaymentRequest) Kind() OperationKind { return KindBillPayment }
func (BillPaymentRequest) operation()          {}

// GoalContributionRequest adds money to a savings goal.
type GoalContributionRequest struct {
	AccountID           string    `json:"accountId"`
	GoalName            string    `json:"goalName,omitempty"`
	Amount              RawAmount `json:"amount"`
	CurrentAmount       RawAmount `json:"currentAmount,omitempty"`
	TargetAmount        RawAmount `json:"targetAmount"`
	MonthlyContribution RawAmount `json:"monthlyContribution,omitempty"`
}

// Kind implements OperationRequest.
func (GoalContributionRequest) Kind() OperationKind { return KindGoalContribution }
func (GoalContributionRequest) operation()          {}

// GoalCreationRequest opens a new savings goal. It moves no money.
type GoalCreationRequest struct {
	Name                string    `json:"name"`
	TargetAmount        RawAmount `json:"targetAmount"`
	TargetDate          string    `json:"targetDate"`
	MonthlyContribution RawAmount `json:"monthlyContribution,omitempty"`
	Category            string    `json:"category,omitempty"`
}

// Kind implements OperationRequest.
func (GoalCreationRequest) Kind() OperationKind { return KindGoalCreation }
func (GoalCreationRequest) operation()          {}

// ExpenseRequest records a spending against an account.
type ExpenseRequest struct {
	AccountID   string    `json:"accountId"`
	Amount      RawAmount `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
}

// Kind implements OperationRequest.
func (ExpenseRequest) Kind() OperationKind { return KindExpense }
func (ExpenseRequest) operation()          {}
