package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eniolaSamuel/RPNCalculator/internal/rpn"
)

var (
	evalTrace    bool
	evalValidate bool
)

var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate an RPN expression",
	Long: `Evaluate a Reverse Polish Notation expression and print the result.

Operands come before their operator, separated by whitespace. Binary
operators: + - * / ^. Unary operators: sqrt sin cos tan (degrees).`,
	Example: `  rpncalc eval "3 4 +"
  rpncalc eval "3 4 + 5 *"
  rpncalc eval --trace "9 sqrt 2 ^"
  rpncalc eval --validate "3 4"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().BoolVar(&evalTrace, "trace", false, "print the per-token evaluation steps")
	evalCmd.Flags().BoolVar(&evalValidate, "validate", false, "only report whether the expression is valid")
}

func runEval(cmd *cobra.Command, args []string) error {
	expr := strings.Join(args, " ")
	evaluator := rpn.NewEvaluator()

	if evalValidate {
		if evaluator.Validate(expr) {
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "invalid")
		return nil
	}

	if evalTrace {
		steps, err := evaluator.Trace(expr)
		if err != nil {
			return err
		}
		for _, step := range steps {
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s %-40s %s\n", step.Token, step.Action, formatStack(step.Stack))
		}
		result := steps[len(steps)-1].Stack[0]
		fmt.Fprintf(cmd.OutOrStdout(), "= %s\n", strconv.FormatFloat(result, 'g', -1, 64))
		return nil
	}

	result, err := evaluator.Evaluate(expr)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(result, 'g', -1, 64))
	return nil
}

// formatStack renders a stack snapshot like "[3 4]".
func formatStack(stack []float64) string {
	parts := make([]string, len(stack))
	for i, v := range stack {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
