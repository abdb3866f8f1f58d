// Package policies evaluates configurable business rules written in CEL.
//
// Every rule is a boolean expression over the facts of a single operation.
// A rule whose expression evaluates to true rejects the operation.
package policies

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/sbilibin2017/gw-ledger-operations/internal/models"
)

// costLimit bounds the evaluation cost of a single expression.
const costLimit = 100000

// Facts are the variables visible to rule expressions.
type Facts struct {
	Kind        string  // transfer, exchange, bill_payment, goal_contribution, expense
	Amount      float64 // requested amount
	Balance     float64 // source account balance
	Currency    string  // source account currency
	Destination string  // destination account id, biller, target currency, goal name or expense category
	External    bool    // destination is outside the directory
}

func (f Facts) activation() map[string]any {
	return map[string]any{
		"kind":        f.Kind,
		"amount":      f.Amount,
		"balance":     f.Balance,
		"currency":    f.Currency,
		"destination": f.Destination,
		"external":    f.External,
	}
}

// Violation describes the rule that rejected an operation.
type Violation struct {
	Rule    string
	Message string
	Err     error // set when the expression failed to evaluate
}

type compiledRule struct {
	rule models.PolicyRule
	prog cel.Program
}

// Set is an ordered list of compiled rules. It is safe for concurrent use.
type Set struct {
	rules []compiledRule
}

// NewEnv returns the CEL environment rule expressions are checked against.
func NewEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("kind", cel.StringType),
		cel.Variable("amount", cel.DoubleType),
		cel.Variable("balance", cel.DoubleType),
		cel.Variable("currency", cel.StringType),
		cel.Variable("destination", cel.StringType),
		cel.Variable("external", cel.BoolType),
	)
}

// Compile type-checks and compiles the rules in order.
func Compile(rules []models.PolicyRule) (*Set, error) {
	env, err := NewEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	set := &Set{rules: make([]compiledRule, 0, len(rules))}
	for _, r := range rules {
		ast, issues := env.Compile(r.Expression)
		if issues != nil && issues.Err() != nil {
			return nil, fmt.Errorf("policy %s: compile error: %w", r.Name, issues.Err())
		}
		if !ast.OutputType().IsExactType(cel.BoolType) {
			return nil, fmt.Errorf("policy %s: expression must return bool, got %s", r.Name, ast.OutputType())
		}

		prog, err := env.Program(ast, cel.CostLimit(costLimit))
		if err != nil {
			return nil, fmt.Errorf("policy %s: program creation error: %w", r.Name, err)
		}
		set.rules = append(set.rules, compiledRule{rule: r, prog: prog})
	}

	return set, nil
}

// Len returns the number of rules.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rules)
}

// Evaluate returns the first rule that rejects the facts, or nil.
// An expression that fails to evaluate rejects the operation.
func (s *Set) Evaluate(facts Facts) *Violation {
	if s == nil {
		return nil
	}
	activation := facts.activation()
	for _, cr := range s.rules {
		out, _, err := cr.prog.Eval(activation)
		if err != nil {
			return &Violation{Rule: cr.rule.Name, Message: cr.message(), Err: err}
		}
		if matched, ok := out.Value().(bool); ok && matched {
			return &Violation{Rule: cr.rule.Name, Message: cr.message()}
		}
	}
	return nil
}

func (cr compiledRule) message() string {
	if cr.rule.Message != "" {
		return cr.rule.Message
	}
	return fmt.Sprintf("operation rejected by policy %s", cr.rule.Name)
}
