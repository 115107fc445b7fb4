// Package rpn provides tokenization and evaluation of Reverse Polish
// Notation arithmetic expressions.
package rpn

import (
	"math"
	"strconv"
)

// TokenKind represents the classification of a token.
type TokenKind int

const (
	// TokenNumber is a finite decimal literal.
	TokenNumber TokenKind = iota
	// TokenOperator is a member of the fixed operator set.
	TokenOperator
	// TokenInvalid is anything else.
	TokenInvalid
)

// String returns the string representation of the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenNumber:
		return "NUMBER"
	case TokenOperator:
		return "OPERATOR"
	case TokenInvalid:
		return "INVALID"
	default:
		return "UNKNOWN"
	}
}

// Token represents a classified unit of an expression.
type Token struct {
	Kind    TokenKind
	Literal string
	Value   float64  // parsed value, set when Kind is TokenNumber
	Op      Operator // resolved operator, set when Kind is TokenOperator
}

// classify resolves a raw token into a number, an operator, or invalid.
// The operator vocabulary is checked first; everything else must parse as
// a finite float. Non-finite parses ("inf", "nan") are rejected.
func classify(literal string) Token {
	if op, ok := LookupOperator(literal); ok {
		return Token{Kind: TokenOperator, Literal: literal, Op: op}
	}
	if v, err := strconv.ParseFloat(literal, 64); err == nil && !math.IsInf(v, 0) && !math.IsNaN(v) {
		return Token{Kind: TokenNumber, Literal: literal, Value: v}
	}
	return Token{Kind: TokenInvalid, Literal: literal}
}
