package rpn

import (
	"fmt"
	"strconv"
)

// EmptyExpressionError reports an input that is empty or all whitespace.
type EmptyExpressionError struct{}

// Error implements the error interface.
func (e *EmptyExpressionError) Error() string {
	return "expression is empty"
}

// NewEmptyExpressionError creates a new EmptyExpressionError.
func NewEmptyExpressionError() *EmptyExpressionError {
	return &EmptyExpressionError{}
}

// UnknownTokenError reports a token that is neither a valid number nor a
// recognized operator.
type UnknownTokenError struct {
	Token string
}

// Error implements the error interface.
func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("unknown token: %q", e.Token)
}

// NewUnknownTokenError creates a new UnknownTokenError.
func NewUnknownTokenError(token string) *UnknownTokenError {
	return &UnknownTokenError{Token: token}
}

// InsufficientOperandsError reports an operator applied with too few
// values on the stack, or an expression that reduced to nothing.
type InsufficientOperandsError struct {
	Operator  string // empty when the final stack was empty
	Needed    int
	Available int
}

// Error implements the error interface.
func (e *InsufficientOperandsError) Error() string {
	if e.Operator == "" {
		return "expression produced no result"
	}
	return fmt.Sprintf("operator %q requires %d operand(s), have %d", e.Operator, e.Needed, e.Available)
}

// NewInsufficientOperandsError creates a new InsufficientOperandsError.
func NewInsufficientOperandsError(operator string, needed, available int) *InsufficientOperandsError {
	return &InsufficientOperandsError{Operator: operator, Needed: needed, Available: available}
}

// TooManyOperandsError reports an expression that leaves more than one
// value on the stack after all tokens are consumed.
type TooManyOperandsError struct {
	Remaining int
}

// Error implements the error interface.
func (e *TooManyOperandsError) Error() string {
	return fmt.Sprintf("expression left %d values on the stack, expected 1", e.Remaining)
}

// NewTooManyOperandsError creates a new TooManyOperandsError.
func NewTooManyOperandsError(remaining int) *TooManyOperandsError {
	return &TooManyOperandsError{Remaining: remaining}
}

// DivisionByZeroError reports a division with an exact-zero divisor.
type DivisionByZeroError struct {
	Dividend float64
}

// Error implements the error interface.
func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("division by zero: %s / 0", formatNumber(e.Dividend))
}

// NewDivisionByZeroError creates a new DivisionByZeroError.
func NewDivisionByZeroError(dividend float64) *DivisionByZeroError {
	return &DivisionByZeroError{Dividend: dividend}
}

// NegativeSqrtError reports a square root of a negative operand.
type NegativeSqrtError struct {
	Operand float64
}

// Error implements the error interface.
func (e *NegativeSqrtError) Error() string {
	return fmt.Sprintf("square root of negative number: %s", formatNumber(e.Operand))
}

// NewNegativeSqrtError creates a new NegativeSqrtError.
func NewNegativeSqrtError(operand float64) *NegativeSqrtError {
	return &NegativeSqrtError{Operand: operand}
}

// formatNumber renders a float the way results are shown to users.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
