package rpn

import "strings"

// Tokenize trims the input and splits it on runs of whitespace into raw
// tokens. Token content is not validated here; classification happens
// during evaluation.
func Tokenize(expr string) ([]string, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return nil, NewEmptyExpressionError()
	}
	return strings.Fields(trimmed), nil
}
