package handlers

//go:generate mockgen -source=operation.go -destination=operation_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-ledger-operations/internal/models"
)

// OperationExecutor runs a ledger operation and reports its result.
type OperationExecutor interface {
	Execute(ctx context.Context, req models.OperationRequest) models.OperationResult
}

// ErrorResponse represents a request that could not be decoded
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Invalid request body
	Error string `json:"error"`
}

const errInvalidBody = "Invalid request body"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeOperationResult answers 200 for a successful operation and 422 for a rejected one.
func writeOperationResult(w http.ResponseWriter, result models.OperationResult) {
	status := http.StatusOK
	if !result.Succeeded() {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, result)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: errInvalidBody})
		return false
	}
	return true
}

// NewTransferHandler handles transfers.
// @Summary Transfer money
// @Description Transfers money to another account in the directory or to an external reference.
// @Tags operations
// @Accept json
// @Produce json
// @Param request body models.TransferRequest true "Transfer request"
// @Success 200 {object} models.OperationResult "Transfer initiated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 422 {object} models.OperationResult "Transfer rejected"
// @Router /operations/transfer [post]
func NewTransferHandler(executor OperationExecutor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.TransferRequest
		if !decodeBody(w, r, &req) {
			return
		}
		writeOperationResult(w, executor.Execute(r.Context(), req))
	}
}

// NewExchangeHandler handles currency exchanges.
// @Summary Exchange currency
// @Description Converts an amount at the current rate. fromCurrency defaults to the account currency.
// @Tags operations
// @Accept json
// @Produce json
// @Param request body models.ExchangeRequest true "Exchange request"
// @Success 200 {object} models.OperationResult "Exchange completed"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 422 {object} models.OperationResult "Exchange rejected"
// @Router /operations/exchange [post]
func NewExchangeHandler(executor OperationExecutor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ExchangeRequest
		if !decodeBody(w, r, &req) {
			return
		}
		writeOperationResult(w, executor.Execute(r.Context(), req))
	}
}

// NewBillPaymentHandler handles bill payments.
// @Summary Pay a bill
// @Description Schedules a payment to a biller.
// @Tags operations
// @Accept json
// @Produce json
// @Param request body models.BillPaymentRequest true "Bill payment request"
// @Success 200 {object} models.OperationResult "Payment scheduled"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 422 {object} models.OperationResult "Payment rejected"
// @Router /operations/bill-payment [post]
func NewBillPaymentHandler(executor OperationExecutor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.BillPaymentRequest
		if !decodeBody(w, r, &req) {
			return
		}
		writeOperationResult(w, executor.Execute(r.Context(), req))
	}
}

// NewGoalContributionHandler handles savings goal contributions.
// @Summary Contribute to a savings goal
// @Description Records a contribution and returns the goal progress.
// @Tags operations
// @Accept json
// @Produce json
// @Param request body models.GoalContributionRequest true "Goal contribution request"
// @Success 200 {object} models.OperationResult "Contribution recorded"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 422 {object} models.OperationResult "Contribution rejected"
// @Router /operations/goal-contribution [post]
func NewGoalContributionHandler(executor OperationExecutor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.GoalContributionRequest
		if !decodeBody(w, r, &req) {
			return
		}
		writeOperationResult(w, executor.Execute(r.Context(), req))
	}
}

// NewGoalCreationHandler handles new savings goals.
// @Summary Create a savings goal
// @Description Validates a new savings goal and returns the months needed at the planned monthly contribution.
// @Tags operations
// @Accept json
// @Produce json
// @Param request body models.GoalCreationRequest true "Goal creation request"
// @Success 200 {object} models.OperationResult "Goal created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 422 {object} models.OperationResult "Goal rejected"
// @Router /operations/goal [post]
func NewGoalCreationHandler(executor OperationExecutor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.GoalCreationRequest
		if !decodeBody(w, r, &req) {
			return
		}
		writeOperationResult(w, executor.Execute(r.Context(), req))
	}
}

// NewExpenseHandler handles expense recording.
// @Summary Record an expense
// @Tags operations
// @Accept json
// @Produce json
// @Param request body models.ExpenseRequest true "Expense request"
// @Success 200 {object} models.OperationResult "Expense added"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 422 {object} models.OperationResult "Expense rejected"
// @Router /operations/expense [post]
func NewExpenseHandler(executor OperationExecutor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ExpenseRequest
		if !decodeBody(w, r, &req) {
			return
		}
		writeOperationResult(w, executor.Execute(r.Context(), req))
	}
}
