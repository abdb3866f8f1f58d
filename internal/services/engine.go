package services

//go:generate mockgen -source=engine.go -destination=engine_mock.go -package=services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-ledger-operations/internal/logger"
	"github.com/sbilibin2017/gw-ledger-operations/internal/models"
	"github.com/shopspring/decimal"
)

// RateProvider resolves a conversion rate for a currency pair.
type RateProvider interface {
	Rate(from, to models.CurrencyCode) (decimal.Decimal, error)
}

// NotificationSink receives the outcome of every executed operation.
type NotificationSink interface {
	Notify(ctx context.Context, level models.Level, message string)
}

var hundred = decimal.NewFromInt(100)

// LedgerOperationEngine validates operation requests and computes their results.
// Nothing is persisted: executing the same request twice yields the same computed
// amount without any cumulative effect on the accounts.
type LedgerOperationEngine struct {
	validator *OperationValidator
	rates     RateProvider
	sink      NotificationSink
}

// NewLedgerOperationEngine creates an engine.
func NewLedgerOperationEngine(
	validator *OperationValidator,
	rates RateProvider,
	sink NotificationSink,
) *LedgerOperationEngine {
	return &LedgerOperationEngine{
		validator: validator,
		rates:     rates,
		sink:      sink,
	}
}

// Execute validates the request, computes its result and reports the outcome
// to the notification sink exactly once.
func (e *LedgerOperationEngine) Execute(ctx context.Context, req models.OperationRequest) models.OperationResult {
	req = normalizeRequest(req)

	v, err := e.validator.Validate(req)
	if err != nil {
		return e.fail(ctx, req, err)
	}

	var result models.OperationResult
	switch r := v.Request.(type) {
	case models.TransferRequest:
		result = e.transfer(r, v)
	case models.ExchangeRequest:
		result, err = e.exchange(r, v)
	case models.BillPaymentRequest:
		result = e.billPayment(r, v)
	case models.GoalContributionRequest:
		result = e.goalContribution(r, v)
	case models.GoalCreationRequest:
		result = e.goalCreation(r, v)
	case models.ExpenseRequest:
		result = e.expense(r, v)
	}
	if err != nil {
		return e.fail(ctx, req, err)
	}

	result.ID = uuid.New()
	result.Kind = req.Kind()
	result.Outcome = models.OutcomeSuccess

	logger.Log.Debugw("operation executed",
		"id", result.ID,
		"kind", result.Kind,
		"computed_amount", result.ComputedAmount,
	)

	e.sink.Notify(ctx, models.LevelSuccess, result.Message)
	return result
}

// Quote previews an exchange without executing it.
func (e *LedgerOperationEngine) Quote(from, to models.CurrencyCode, amount decimal.Decimal) (models.ExchangeQuote, error) {
	if checkAmountRange(amount) != nil || !amount.IsPositive() {
		return models.ExchangeQuote{}, newOperationError(ErrInvalidAmount, "amount", "")
	}
	from = models.NormalizeCurrency(string(from))
	to = models.NormalizeCurrency(string(to))

	rate, err := e.rates.Rate(from, to)
	if err != nil {
		return models.ExchangeQuote{}, err
	}

	return models.ExchangeQuote{
		FromCurrency:    from,
		ToCurrency:      to,
		Rate:            rate,
		Amount:          amount,
		ConvertedAmount: amount.Mul(rate).Round(2),
	}, nil
}

func (e *LedgerOperationEngine) transfer(r models.TransferRequest, v ValidationResult) models.OperationResult {
	target := strings.TrimSpace(r.ToAccount)
	if v.Destination != nil {
		target = v.Destination.DisplayName
	}

	return models.OperationResult{
		ComputedAmount: v.Amount,
		Details: models.TransferDetails{
			Destination: strings.TrimSpace(r.ToAccount),
			External:    r.IsExternal(),
			Description: r.Description,
		},
		Message: fmt.Sprintf("Transfer of %s to %s initiated successfully!",
			models.FormatMoney(v.Amount, v.Source.Currency), target),
	}
}

func (e *LedgerOperationEngine) exchange(r models.ExchangeRequest, v ValidationResult) (models.OperationResult, error) {
	from := models.NormalizeCurrency(string(r.FromCurrency))
	if from == "" {
		from = v.Source.Currency
	}
	to := models.NormalizeCurrency(string(r.ToCurrency))

	rate, err := e.rates.Rate(from, to)
	if err != nil {
		return models.OperationResult{}, err
	}

	converted := v.Amount.Mul(rate).Round(2)
	return models.OperationResult{
		ComputedAmount: converted,
		Details: models.ExchangeDetails{
			FromCurrency: from,
			ToCurrency:   to,
			Rate:         rate,
		},
		Message: fmt.Sprintf("Exchange of %s to %s completed successfully!",
			models.FormatMoney(v.Amount, from), models.FormatMoney(converted, to)),
	}, nil
}

func (e *LedgerOperationEngine) billPayment(r models.BillPaymentRequest, v ValidationResult) models.OperationResult {
	biller := strings.TrimSpace(r.Biller)
	return models.OperationResult{
		ComputedAmount: v.Amount,
		Details: models.BillPaymentDetails{
			Biller:  biller,
			DueDate: strings.TrimSpace(r.DueDate),
		},
		Message: fmt.Sprintf("Payment of %s to %s scheduled successfully!",
			models.FormatMoney(v.Amount, v.Source.Currency), biller),
	}
}

func (e *LedgerOperationEngine) goalContribution(r models.GoalContributionRequest, v ValidationResult) models.OperationResult {
	g := v.Goal

	newCurrent := g.Current.Add(v.Amount)
	if newCurrent.GreaterThan(g.Target) {
		newCurrent = g.Target
	}
	remaining := g.Target.Sub(newCurrent)

	progress := newCurrent.Div(g.Target).Mul(hundred)
	if progress.GreaterThan(hundred) {
		progress = hundred
	}

	return models.OperationResult{
		ComputedAmount: v.Amount,
		Details: models.GoalContributionDetails{
			GoalName:         strings.TrimSpace(r.GoalName),
			NewCurrentAmount: newCurrent,
			TargetAmount:     g.Target,
			RemainingAmount:  remaining,
			MonthsRemaining:  monthsToGoal(remaining, g.Monthly),
			ProgressPercent:  progress.Round(2),
		},
		Message: fmt.Sprintf("Contribution of %s to %s recorded successfully!",
			models.FormatMoney(v.Amount, v.Source.Currency), goalName(r.GoalName)),
	}
}

func (e *LedgerOperationEngine) goalCreation(r models.GoalCreationRequest, v ValidationResult) models.OperationResult {
	name := strings.TrimSpace(r.Name)
	return models.OperationResult{
		ComputedAmount: v.Goal.Target,
		Details: models.GoalCreationDetails{
			GoalName:            name,
			Category:            strings.TrimSpace(r.Category),
			TargetAmount:        v.Goal.Target,
			TargetDate:          strings.TrimSpace(r.TargetDate),
			MonthlyContribution: v.Goal.Monthly,
			MonthsToGoal:        monthsToGoal(v.Goal.Target, v.Goal.Monthly),
		},
		Message: fmt.Sprintf(`Savings goal "%s" created successfully!`, name),
	}
}

func (e *LedgerOperationEngine) expense(r models.ExpenseRequest, v ValidationResult) models.OperationResult {
	return models.OperationResult{
		ComputedAmount: v.Amount,
		Details: models.ExpenseDetails{
			Category:    strings.TrimSpace(r.Category),
			Description: strings.TrimSpace(r.Description),
		},
		Message: "Expense added successfully!",
	}
}

// monthsToGoal is ceil(remaining / monthly), or 0 when monthly <= 0.
func monthsToGoal(remaining, monthly decimal.Decimal) int64 {
	if !monthly.IsPositive() || !remaining.IsPositive() {
		return 0
	}
	q, r := remaining.QuoRem(monthly, 0)
	months := q.IntPart()
	if !r.IsZero() {
		months++
	}
	return months
}

func (e *LedgerOperationEngine) fail(ctx context.Context, req models.OperationRequest, err error) models.OperationResult {
	reason := failureReason(err)
	result := models.OperationResult{
		ID:             uuid.New(),
		Outcome:        models.OutcomeFailure,
		Reason:         &reason,
		ComputedAmount: decimal.Zero,
		Message:        failureMessage(req, reason),
	}
	if req != nil {
		result.Kind = req.Kind()
	}

	e.sink.Notify(ctx, models.LevelError, result.Message)
	return result
}

// failureMessage follows "<Operation> of <amount> to <target> failed: <reason>"
// using the values as submitted.
func failureMessage(req models.OperationRequest, reason models.FailureReason) string {
	var op, amount, target string
	switch r := req.(type) {
	case models.TransferRequest:
		op, amount, target = "Transfer", string(r.Amount), r.ToAccount
	case models.ExchangeRequest:
		op, amount, target = "Exchange", string(r.Amount), string(r.ToCurrency)
	case models.BillPaymentRequest:
		op, amount, target = "Payment", string(r.Amount), r.Biller
	case models.GoalContributionRequest:
		op, amount, target = "Contribution", string(r.Amount), goalName(r.GoalName)
	case models.GoalCreationRequest:
		op, amount, target = "Savings goal", string(r.TargetAmount), goalName(r.Name)
	case models.ExpenseRequest:
		op, amount, target = "Expense", string(r.Amount), r.Category
	default:
		return fmt.Sprintf("Operation failed: %s", reason.Message)
	}
	return fmt.Sprintf("%s of %s to %s failed: %s",
		op, placeholder(amount, "(no amount)"), placeholder(target, "(no destination)"), reason.Message)
}

func goalName(name string) string {
	return placeholder(name, "savings goal")
}

func placeholder(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
