package services

//go:generate mockgen -source=validator.go -destination=validator_mock.go -package=services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sbilibin2017/gw-ledger-operations/internal/logger"
	"github.com/sbilibin2017/gw-ledger-operations/internal/models"
	"github.com/sbilibin2017/gw-ledger-operations/internal/policies"
	"github.com/shopspring/decimal"
)

// AccountDirectory looks up seeded accounts.
type AccountDirectory interface {
	Lookup(id string) (models.Account, error)
}

// PolicyEvaluator checks an operation against configured business rules.
type PolicyEvaluator interface {
	Evaluate(facts policies.Facts) *policies.Violation
}

// GoalFigures are the parsed savings goal numbers of a goal contribution.
type GoalFigures struct {
	Current decimal.Decimal
	Target  decimal.Decimal
	Monthly decimal.Decimal
}

// ValidationResult carries the parsed and resolved parts of a valid request.
type ValidationResult struct {
	Request     models.OperationRequest
	Amount      decimal.Decimal
	Source      models.Account
	Destination *models.Account // internal transfer destination
	Goal        GoalFigures
}

// OperationValidator applies the validation rules in order; the first failure wins:
// required fields, amount, same account, account existence, policies.
type OperationValidator struct {
	accounts AccountDirectory
	policies PolicyEvaluator
}

// NewOperationValidator creates a validator. policies may be nil.
func NewOperationValidator(accounts AccountDirectory, policies PolicyEvaluator) *OperationValidator {
	return &OperationValidator{accounts: accounts, policies: policies}
}

type requiredField struct {
	name  string
	value string
}

// Validate checks a request and returns its parsed form.
// Required fields are checked before the account directory is consulted.
func (v *OperationValidator) Validate(req models.OperationRequest) (ValidationResult, error) {
	switch r := normalizeRequest(req).(type) {
	case models.TransferRequest:
		return v.validateTransfer(r)
	case models.ExchangeRequest:
		return v.validateExchange(r)
	case models.BillPaymentRequest:
		return v.validateBillPayment(r)
	case models.GoalContributionRequest:
		return v.validateGoalContribution(r)
	case models.GoalCreationRequest:
		return v.validateGoalCreation(r)
	case models.ExpenseRequest:
		return v.validateExpense(r)
	default:
		return ValidationResult{}, newOperationError(ErrUnsupportedOperation, "",
			fmt.Sprintf("unsupported operation request %T", req))
	}
}

func (v *OperationValidator) validateTransfer(r models.TransferRequest) (ValidationResult, error) {
	if err := requireFields(
		requiredField{"fromAccount", r.FromAccount},
		requiredField{"toAccount", r.ToAccount},
		requiredField{"amount", string(r.Amount)},
	); err != nil {
		return ValidationResult{}, err
	}

	amount, err := parsePositive("amount", r.Amount)
	if err != nil {
		return ValidationResult{}, err
	}

	from := strings.TrimSpace(r.FromAccount)
	to := strings.TrimSpace(r.ToAccount)
	if !r.IsExternal() && from == to {
		return ValidationResult{}, newOperationError(ErrSameAccount, "toAccount", "")
	}

	source, err := v.lookup("fromAccount", from)
	if err != nil {
		return ValidationResult{}, err
	}

	res := ValidationResult{Request: r, Amount: amount, Source: source}
	if !r.IsExternal() {
		dest, err := v.lookup("toAccount", to)
		if err != nil {
			return ValidationResult{}, err
		}
		res.Destination = &dest
	}

	return res, v.checkPolicies(r.Kind(), amount, source, to, r.IsExternal())
}

func (v *OperationValidator) validateExchange(r models.ExchangeRequest) (ValidationResult, error) {
	if err := requireFields(
		requiredField{"accountId", r.AccountID},
		requiredField{"amount", string(r.Amount)},
		requiredField{"toCurrency", string(r.ToCurrency)},
	); err != nil {
		return ValidationResult{}, err
	}

	amount, err := parsePositive("amount", r.Amount)
	if err != nil {
		return ValidationResult{}, err
	}

	source, err := v.lookup("accountId", strings.TrimSpace(r.AccountID))
	if err != nil {
		return ValidationResult{}, err
	}

	to := models.NormalizeCurrency(string(r.ToCurrency))
	return ValidationResult{Request: r, Amount: amount, Source: source},
		v.checkPolicies(r.Kind(), amount, source, string(to), false)
}

func (v *OperationValidator) validateBillPayment(r models.BillPaymentRequest) (ValidationResult, error) {
	if err := requireFields(
		requiredField{"accountId", r.AccountID},
		requiredField{"amount", string(r.Amount)},
		requiredField{"biller", r.Biller},
	); err != nil {
		return ValidationResult{}, err
	}

	amount, err := parsePositive("amount", r.Amount)
	if err != nil {
		return ValidationResult{}, err
	}

	source, err := v.lookup("accountId", strings.TrimSpace(r.AccountID))
	if err != nil {
		return ValidationResult{}, err
	}

	return ValidationResult{Request: r, Amount: amount, Source: source},
		v.checkPolicies(r.Kind(), amount, source, strings.TrimSpace(r.Biller), true)
}

func (v *OperationValidator) validateGoalContribution(r models.GoalContributionRequest) (ValidationResult, error) {
	if err := requireFields(
		requiredField{"accountId", r.AccountID},
		requiredField{"amount", string(r.Amount)},
		requiredField{"targetAmount", string(r.TargetAmount)},
	); err != nil {
		return ValidationResult{}, err
	}

	amount, err := parsePositive("amount", r.Amount)
	if err != nil {
		return ValidationResult{}, err
	}

	var goal GoalFigures
	if goal.Target, err = parsePositive("targetAmount", r.TargetAmount); err != nil {
		return ValidationResult{}, err
	}
	if goal.Current, err = parseOptional("currentAmount", r.CurrentAmount); err != nil {
		return ValidationResult{}, err
	}
	if goal.Current.IsNegative() {
		return ValidationResult{}, newOperationError(ErrInvalidAmount, "currentAmount",
			"currentAmount must not be negative")
	}
	if goal.Monthly, err = parseOptional("monthlyContribution", r.MonthlyContribution); err != nil {
		return ValidationResult{}, err
	}

	source, err := v.lookup("accountId", strings.TrimSpace(r.AccountID))
	if err != nil {
		return ValidationResult{}, err
	}

	return ValidationResult{Request: r, Amount: amount, Source: source, Goal: goal},
		v.checkPolicies(r.Kind(), amount, source, strings.TrimSpace(r.GoalName), false)
}

// validateGoalCreation does not consult the directory or the policies: a new goal moves no money.
func (v *OperationValidator) validateGoalCreation(r models.GoalCreationRequest) (ValidationResult, error) {
	if err := requireFields(
		requiredField{"name", r.Name},
		requiredField{"targetAmount", string(r.TargetAmount)},
		requiredField{"targetDate", r.TargetDate},
	); err != nil {
		return ValidationResult{}, err
	}

	target, err := parsePositive("targetAmount", r.TargetAmount)
	if err != nil {
		return ValidationResult{}, err
	}
	monthly, err := parseOptional("monthlyContribution", r.MonthlyContribution)
	if err != nil {
		return ValidationResult{}, err
	}

	return ValidationResult{
		Request: r,
		Amount:  target,
		Goal:    GoalFigures{Current: decimal.Zero, Target: target, Monthly: monthly},
	}, nil
}

func (v *OperationValidator) validateExpense(r models.ExpenseRequest) (ValidationResult, error) {
	if err := requireFields(
		requiredField{"accountId", r.AccountID},
		requiredField{"amount", string(r.Amount)},
		requiredField{"category", r.Category},
		requiredField{"description", r.Description},
	); err != nil {
		return ValidationResult{}, err
	}

	amount, err := parsePositive("amount", r.Amount)
	if err != nil {
		return ValidationResult{}, err
	}

	source, err := v.lookup("accountId", strings.TrimSpace(r.AccountID))
	if err != nil {
		return ValidationResult{}, err
	}

	return ValidationResult{Request: r, Amount: amount, Source: source},
		v.checkPolicies(r.Kind(), amount, source, strings.TrimSpace(r.Category), false)
}

func (v *OperationValidator) lookup(field, id string) (models.Account, error) {
	acc, err := v.accounts.Lookup(id)
	if err != nil {
		return models.Account{}, newOperationError(ErrUnknownAccount, field,
			fmt.Sprintf("account %q not found", id))
	}
	return acc, nil
}

func (v *OperationValidator) checkPolicies(
	kind models.OperationKind,
	amount decimal.Decimal,
	source models.Account,
	destination string,
	external bool,
) error {
	if v.policies == nil {
		return nil
	}
	violation := v.policies.Evaluate(policies.Facts{
		Kind:        string(kind),
		Amount:      amount.InexactFloat64(),
		Balance:     source.Balance.InexactFloat64(),
		Currency:    string(source.Currency),
		Destination: destination,
		External:    external,
	})
	if violation == nil {
		return nil
	}
	if violation.Err != nil {
		logger.Log.Warnw("policy evaluation failed",
			"policy", violation.Rule,
			"kind", kind,
			"error", violation.Err,
		)
	}
	return newOperationError(ErrPolicyViolation, violation.Rule, violation.Message)
}

func requireFields(fields ...requiredField) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return newOperationError(ErrMissingField, f.name,
				fmt.Sprintf("missing required field %s", f.name))
		}
	}
	return nil
}

// Amount bounds accepted from requests.
const (
	maxAmountDigits   = 15
	maxAmountFraction = 8
)

var (
	maxAmount = decimal.New(1, maxAmountDigits)

	errAmountOutOfRange = errors.New("amount is out of range")
)

// ParseAmount parses a decimal amount. Amounts with an absolute value of
// 10^15 or more, or with more than 8 fractional digits, are rejected.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, err
	}
	if err := checkAmountRange(d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

// checkAmountRange looks at the exponent first so that values like 1e50000000
// are never expanded.
func checkAmountRange(d decimal.Decimal) error {
	exp := d.Exponent()
	if exp > maxAmountDigits || exp < -maxAmountFraction || d.Abs().Cmp(maxAmount) >= 0 {
		return errAmountOutOfRange
	}
	return nil
}

func parsePositive(field string, raw models.RawAmount) (decimal.Decimal, error) {
	d, err := ParseAmount(raw.String())
	if errors.Is(err, errAmountOutOfRange) {
		return decimal.Zero, newOperationError(ErrInvalidAmount, field,
			fmt.Sprintf("%s is out of range", field))
	}
	if err != nil || !d.IsPositive() {
		return decimal.Zero, newOperationError(ErrInvalidAmount, field,
			fmt.Sprintf("%s must be greater than zero", field))
	}
	return d, nil
}

func parseOptional(field string, raw models.RawAmount) (decimal.Decimal, error) {
	if raw.IsEmpty() {
		return decimal.Zero, nil
	}
	d, err := ParseAmount(raw.String())
	if errors.Is(err, errAmountOutOfRange) {
		return decimal.Zero, newOperationError(ErrInvalidAmount, field,
			fmt.Sprintf("%s is out of range", field))
	}
	if err != nil {
		return decimal.Zero, newOperationError(ErrInvalidAmount, field,
			fmt.Sprintf("%s must be a number", field))
	}
	return d, nil
}

// normalizeRequest dereferences pointer variants. A nil pointer becomes a nil request.
func normalizeRequest(req models.OperationRequest) models.OperationRequest {
	switch r := req.(type) {
	case *models.TransferRequest:
		if r == nil {
			return nil
		}
		return *r
	case *models.ExchangeRequest:
		if r == nil {
			return nil
		}
		return *r
	case *models.BillPaymentRequest:
		if r == nil {
			return nil
		}
		return *r
	case *models.GoalContributionRequest:
		if r == nil {
			return nil
		}
		return *r
	case *models.GoalCreationRequest:
		if r == nil {
			return nil
		}
		return *r
	case *models.ExpenseRequest:
		if r == nil {
			return nil
		}
		return *r
	}
	return req
}
