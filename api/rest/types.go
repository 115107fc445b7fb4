// Package rest provides the HTTP API and web form for the RPN calculator.
package rest

import (
	"github.com/eniolaSamuel/RPNCalculator/internal/history"
	"github.com/eniolaSamuel/RPNCalculator/internal/rpn"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// SuccessResponse represents a generic success response.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// HealthResponse represents a health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// ReadyResponse represents a readiness check response.
type ReadyResponse struct {
	Ready     bool   `json:"ready"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// ExpressionRequest carries an expression to evaluate, validate or trace.
type ExpressionRequest struct {
	Expression string `json:"expression"`
}

// EvaluateResponse represents a successful evaluation.
type EvaluateResponse struct {
	Expression string  `json:"expression"`
	Result     float64 `json:"result"`
}

// ValidateResponse reports whether an expression would evaluate.
type ValidateResponse struct {
	Expression string `json:"expression"`
	Valid      bool   `json:"valid"`
}

// TraceResponse carries the result with the per-token evaluation trace.
type TraceResponse struct {
	Expression string     `json:"expression"`
	Result     float64    `json:"result"`
	Steps      []rpn.Step `json:"steps"`
}

// HistoryResponse lists recent calculations, most recent first.
type HistoryResponse struct {
	Entries []history.Record `json:"entries"`
	Total   int              `json:"total"`
}
