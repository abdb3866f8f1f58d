package services

import (
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-ledger-operations/internal/models"
)

// Operation failures. All of them are recoverable and reported as a failed result.
var (
	ErrMissingField    = errors.New("please fill in all required fields")
	ErrInvalidAmount   = errors.New("amount must be greater than zero")
	ErrSameAccount     = errors.New("source and destination accounts cannot be the same")
	ErrUnknownAccount  = errors.New("account not found")
	ErrRateUnavailable = errors.New("exchange rate unavailable")
	ErrPolicyViolation = errors.New("operation rejected by policy")

	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// OperationError attaches the offending field (or policy name) to a failure.
type OperationError struct {
	Err    error  // one of the Err* sentinels
	Field  string // field name, policy name or currency pair
	Detail string // user facing text, defaults to Err's text
}

func (e *OperationError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Field)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

func newOperationError(err error, field, detail string) *OperationError {
	return &OperationError{Err: err, Field: field, Detail: detail}
}

// failureReason converts an operation error into the reason carried by a result.
func failureReason(err error) models.FailureReason {
	reason := models.FailureReason{Message: err.Error()}

	var opErr *OperationError
	if errors.As(err, &opErr) {
		reason.Field = opErr.Field
		reason.Message = opErr.Err.Error()
		if opErr.Detail != "" {
			reason.Message = opErr.Detail
		}
	}

	switch {
	case errors.Is(err, ErrMissingField):
		reason.Code = models.CodeMissingField
	case errors.Is(err, ErrInvalidAmount):
		reason.Code = models.CodeInvalidAmount
	case errors.Is(err, ErrSameAccount):
		reason.Code = models.CodeSameAccount
	case errors.Is(err, ErrUnknownAccount):
		reason.Code = models.CodeUnknownAccount
	case errors.Is(err, ErrRateUnavailable):
		reason.Code = models.CodeRateUnavailable
	case errors.Is(err, ErrPolicyViolation):
		reason.Code = models.CodePolicyViolation
	case errors.Is(err, ErrUnsupportedOperation):
		reason.Code = models.CodeUnsupportedOperation
	}
	return reason
}
