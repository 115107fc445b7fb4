package rpn

import "math"

// Operator identifies one of the supported RPN operators.
type Operator int

const (
	OpAdd Operator = iota // +
	OpSub                 // -
	OpMul                 // *
	OpDiv                 // /
	OpPow                 // ^
	OpSqrt
	OpSin
	OpCos
	OpTan
)

// opDef describes an operator: its surface symbol and how many operands
// it pops from the stack.
type opDef struct {
	symbol string
	arity  int
}

// opDefs is indexed by Operator. Adding an operator here and to the
// Operator constants is all that is needed to extend the vocabulary.
var opDefs = [...]opDef{
	OpAdd:  {"+", 2},
	OpSub:  {"-", 2},
	OpMul:  {"*", 2},
	OpDiv:  {"/", 2},
	OpPow:  {"^", 2},
	OpSqrt: {"sqrt", 1},
	OpSin:  {"sin", 1},
	OpCos:  {"cos", 1},
	OpTan:  {"tan", 1},
}

// symbolTable maps surface symbols to operators, built from opDefs.
var symbolTable = func() map[string]Operator {
	m := make(map[string]Operator, len(opDefs))
	for op, def := range opDefs {
		m[def.symbol] = Operator(op)
	}
	return m
}()

// LookupOperator resolves an operator symbol. Symbols are case-sensitive.
func LookupOperator(symbol string) (Operator, bool) {
	op, ok := symbolTable[symbol]
	return op, ok
}

// String returns the surface symbol of the operator.
func (op Operator) String() string {
	if int(op) < len(opDefs) {
		return opDefs[op].symbol
	}
	return "?"
}

// Arity returns the number of operands the operator consumes.
func (op Operator) Arity() int {
	if int(op) < len(opDefs) {
		return opDefs[op].arity
	}
	return 0
}

// applyBinary applies a binary operator to operands in left-to-right
// order: a is the earlier operand, b the later one.
func (op Operator) applyBinary(a, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSub:
		return a - b, nil
	case OpMul:
		return a * b, nil
	case OpDiv:
		if b == 0 {
			return 0, NewDivisionByZeroError(a)
		}
		return a / b, nil
	case OpPow:
		return math.Pow(a, b), nil
	default:
		return 0, NewUnknownTokenError(op.String())
	}
}

// applyUnary applies a unary operator. Trigonometric operators interpret
// the operand as degrees.
func (op Operator) applyUnary(a float64) (float64, error) {
	switch op {
	case OpSqrt:
		if a < 0 {
			return 0, NewNegativeSqrtError(a)
		}
		return math.Sqrt(a), nil
	case OpSin:
		return math.Sin(degToRad(a)), nil
	case OpCos:
		return math.Cos(degToRad(a)), nil
	case OpTan:
		return math.Tan(degToRad(a)), nil
	default:
		return 0, NewUnknownTokenError(op.String())
	}
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
