package rpn

import "fmt"

// Step records the effect of a single token on the evaluation stack.
type Step struct {
	// Token is the raw token that was applied.
	Token string `json:"token"`
	// Stack is a snapshot of the stack after applying the token.
	Stack []float64 `json:"stack"`
	// Action is a human-readable description of what happened.
	Action string `json:"action"`
}

// Evaluator evaluates RPN expressions.
type Evaluator interface {
	// Evaluate computes the value of an expression, or a classified error.
	Evaluate(expr string) (float64, error)

	// Validate reports whether Evaluate would succeed. It never errors.
	Validate(expr string) bool

	// Trace evaluates an expression and records a per-token trace.
	Trace(expr string) ([]Step, error)
}

// DefaultEvaluator is the default implementation of Evaluator. It is
// stateless; a single instance is safe for concurrent use.
type DefaultEvaluator struct{}

// NewEvaluator creates a new DefaultEvaluator.
func NewEvaluator() *DefaultEvaluator {
	return &DefaultEvaluator{}
}

// Evaluate computes the value of an RPN expression.
func (e *DefaultEvaluator) Evaluate(expr string) (float64, error) {
	result, _, err := e.scan(expr, false)
	return result, err
}

// Validate reports whether the expression evaluates successfully.
func (e *DefaultEvaluator) Validate(expr string) bool {
	_, err := e.Evaluate(expr)
	return err == nil
}

// Trace evaluates an expression and returns the per-token trace. The
// trace runs the same guarded scan as Evaluate, so malformed input
// produces the same classified errors instead of a silent NaN; steps
// recorded before the failure are returned alongside the error.
func (e *DefaultEvaluator) Trace(expr string) ([]Step, error) {
	_, steps, err := e.scan(expr, true)
	return steps, err
}

// scan is the single evaluation loop shared by Evaluate and Trace. It
// walks the tokens left to right, maintaining the value stack, and
// optionally records a step per token.
func (e *DefaultEvaluator) scan(expr string, record bool) (float64, []Step, error) {
	literals, err := Tokenize(expr)
	if err != nil {
		return 0, nil, err
	}

	stack := make([]float64, 0, len(literals))
	var steps []Step

	for _, literal := range literals {
		tok := classify(literal)
		switch tok.Kind {
		case TokenNumber:
			stack = append(stack, tok.Value)
			if record {
				steps = append(steps, newStep(literal, stack, fmt.Sprintf("push %s", formatNumber(tok.Value))))
			}

		case TokenOperator:
			op := tok.Op
			if len(stack) < op.Arity() {
				return 0, steps, NewInsufficientOperandsError(op.String(), op.Arity(), len(stack))
			}

			var value float64
			var action string
			if op.Arity() == 2 {
				b := stack[len(stack)-1]
				a := stack[len(stack)-2]
				stack = stack[:len(stack)-2]
				value, err = op.applyBinary(a, b)
				if err != nil {
					return 0, steps, err
				}
				action = fmt.Sprintf("apply %s %s %s = %s",
					formatNumber(a), op, formatNumber(b), formatNumber(value))
			} else {
				a := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				value, err = op.applyUnary(a)
				if err != nil {
					return 0, steps, err
				}
				action = fmt.Sprintf("apply %s %s = %s", op, formatNumber(a), formatNumber(value))
			}

			stack = append(stack, value)
			if record {
				steps = append(steps, newStep(literal, stack, action))
			}

		default:
			return 0, steps, NewUnknownTokenError(literal)
		}
	}

	switch len(stack) {
	case 1:
		return stack[0], steps, nil
	case 0:
		// Unreachable with a non-empty token list, kept as a guard.
		return 0, steps, NewInsufficientOperandsError("", 1, 0)
	default:
		return 0, steps, NewTooManyOperandsError(len(stack))
	}
}

// newStep builds a Step with a copy of the current stack, since the
// scan keeps mutating the backing array.
func newStep(token string, stack []float64, action string) Step {
	snapshot := make([]float64, len(stack))
	copy(snapshot, stack)
	return Step{Token: token, Stack: snapshot, Action: action}
}

// Evaluate is a convenience function to evaluate an expression string.
func Evaluate(expr string) (float64, error) {
	return NewEvaluator().Evaluate(expr)
}

// Validate is a convenience function to validate an expression string.
func Validate(expr string) bool {
	return NewEvaluator().Validate(expr)
}

// Trace is a convenience function to trace an expression string.
func Trace(expr string) ([]Step, error) {
	return NewEvaluator().Trace(expr)
}
