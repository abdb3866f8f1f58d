package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-ledger-operations/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type operationResponse struct {
	ID             string                `json:"id"`
	Kind           models.OperationKind  `json:"kind"`
	Outcome        models.Outcome        `json:"outcome"`
	Reason         *models.FailureReason `json:"reason"`
	ComputedAmount decimal.Decimal       `json:"computedAmount"`
	Details        map[string]any        `json:"details"`
	Message        string                `json:"message"`
}

func TestOperationHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor := NewMockOperationExecutor(ctrl)

	success := func(kind models.OperationKind, amount string, details models.OperationDetails, msg string) models.OperationResult {
		return models.OperationResult{
			ID:             uuid.New(),
			Kind:           kind,
			Outcome:        models.OutcomeSuccess,
			ComputedAmount: decimal.RequireFromString(amount),
			Details:        details,
			Message:        msg,
		}
	}

	tests := []struct {
		name            string
		handler         http.HandlerFunc
		body            string
		expectedRequest models.OperationRequest
		result          models.OperationResult
		expectedStatus  int
		expectedMessage string
		expectedCode    string
		expectedError   string
	}{
		{
			name:            "transfer_success",
			handler:         NewTransferHandler(executor),
			body:            `{"fromAccount":"1","toAccount":"2","amount":"500","description":"rent"}`,
			expectedRequest: models.TransferRequest{FromAccount: "1", ToAccount: "2", Amount: "500", Description: "rent"},
			result: success(models.KindTransfer, "500", models.TransferDetails{Destination: "2"},
				"Transfer of $500.00 to Savings Account initiated successfully!"),
			expectedStatus:  http.StatusOK,
			expectedMessage: "Transfer of $500.00 to Savings Account initiated successfully!",
		},
		{
			name:            "exchange_numeric_amount",
			handler:         NewExchangeHandler(executor),
			body:            `{"accountId":"1","amount":1000,"toCurrency":"EUR"}`,
			expectedRequest: models.ExchangeRequest{AccountID: "1", Amount: "1000", ToCurrency: models.EUR},
			result: success(models.KindExchange, "850", models.ExchangeDetails{FromCurrency: models.USD, ToCurrency: models.EUR, Rate: decimal.RequireFromString("0.85")},
				"Exchange of $1000.00 to €850.00 completed successfully!"),
			expectedStatus:  http.StatusOK,
			expectedMessage: "Exchange of $1000.00 to €850.00 completed successfully!",
		},
		{
			name:            "bill_payment_rejected",
			handler:         NewBillPaymentHandler(executor),
			body:            `{"amount":"120","biller":"Electric Co"}`,
			expectedRequest: models.BillPaymentRequest{Amount: "120", Biller: "Electric Co"},
			result: models.OperationResult{
				ID:             uuid.New(),
				Kind:           models.KindBillPayment,
				Outcome:        models.OutcomeFailure,
				Reason:         &models.FailureReason{Code: models.CodeMissingField, Field: "accountId", Message: "missing required field accountId"},
				ComputedAmount: decimal.Zero,
				Message:        "Payment of 120 to Electric Co failed: missing required field accountId",
			},
			expectedStatus:  http.StatusUnprocessableEntity,
			expectedMessage: "Payment of 120 to Electric Co failed: missing required field accountId",
			expectedCode:    models.CodeMissingField,
		},
		{
			name:            "goal_contribution_success",
			handler:         NewGoalContributionHandler(executor),
			body:            `{"accountId":"2","goalName":"Vacation","amount":"2000","currentAmount":"15000","targetAmount":"20000","monthlyContribution":500}`,
			expectedRequest: models.GoalContributionRequest{AccountID: "2", GoalName: "Vacation", Amount: "2000", CurrentAmount: "15000", TargetAmount: "20000", MonthlyContribution: "500"},
			result: success(models.KindGoalContribution, "2000", models.GoalContributionDetails{GoalName: "Vacation", MonthsRemaining: 6},
				"Contribution of $2000.00 to Vacation recorded successfully!"),
			expectedStatus:  http.StatusOK,
			expectedMessage: "Contribution of $2000.00 to Vacation recorded successfully!",
		},
		{
			name:            "goal_creation_success",
			handler:         NewGoalCreationHandler(executor),
			body:            `{"name":"Emergency Fund","targetAmount":10000,"targetDate":"2027-12-31","monthlyContribution":"750"}`,
			expectedRequest: models.GoalCreationRequest{Name: "Emergency Fund", TargetAmount: "10000", TargetDate: "2027-12-31", MonthlyContribution: "750"},
			result: success(models.KindGoalCreation, "10000", models.GoalCreationDetails{GoalName: "Emergency Fund", TargetDate: "2027-12-31", MonthsToGoal: 14},
				`Savings goal "Emergency Fund" created successfully!`),
			expectedStatus:  http.StatusOK,
			expectedMessage: `Savings goal "Emergency Fund" created successfully!`,
		},
		{
			name:            "expense_success",
			handler:         NewExpenseHandler(executor),
			body:            `{"accountId":"1","amount":"42.10","category":"Food","description":"Groceries"}`,
			expectedRequest: models.ExpenseRequest{AccountID: "1", Amount: "42.10", Category: "Food", Description: "Groceries"},
			result: success(models.KindExpense, "42.10", models.ExpenseDetails{Category: "Food", Description: "Groceries"},
				"Expense added successfully!"),
			expectedStatus:  http.StatusOK,
			expectedMessage: "Expense added successfully!",
		},
		{
			name:           "invalid_json",
			handler:        NewTransferHandler(executor),
			body:           `invalid-json`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request body",
		},
		{
			name:           "invalid_amount_type",
			handler:        NewExchangeHandler(executor),
			body:           `{"accountId":"1","amount":true,"toCurrency":"EUR"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.expectedRequest != nil {
				executor.EXPECT().Execute(gomock.Any(), tt.expectedRequest).Return(tt.result)
			}

			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			tt.handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			if tt.expectedError != "" {
				var got ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, tt.expectedError, got.Error)
				return
			}

			var got operationResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.result.ID.String(), got.ID)
			assert.Equal(t, tt.result.Kind, got.Kind)
			assert.Equal(t, tt.result.Outcome, got.Outcome)
			assert.Equal(t, tt.expectedMessage, got.Message)
			assert.True(t, tt.result.ComputedAmount.Equal(got.ComputedAmount))
			if tt.expectedCode != "" {
				require.NotNil(t, got.Reason)
				assert.Equal(t, tt.expectedCode, got.Reason.Code)
			} else {
				assert.Nil(t, got.Reason)
				assert.NotEmpty(t, got.Details)
			}
		})
	}
}
