package rest

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/eniolaSamuel/RPNCalculator/internal/rpn"
)

// indexPage handles GET / and serves the embedded calculator form.
func (s *Server) indexPage(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(indexHTML)
}

// healthCheck handles GET /health
func (s *Server) healthCheck(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// readyCheck handles GET /ready
func (s *Server) readyCheck(c *fiber.Ctx) error {
	ready := s.evaluator != nil && s.history != nil
	status := "ready"
	if !ready {
		status = "not_ready"
	}

	return c.JSON(ReadyResponse{
		Ready:     ready,
		Status:    status,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// evaluate handles POST /api/v1/evaluate
func (s *Server) evaluate(c *fiber.Ctx) error {
	var req ExpressionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
		})
	}

	result, err := s.evaluator.Evaluate(req.Expression)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   errorKind(err),
			Message: err.Error(),
		})
	}

	s.history.Add(req.Expression, result)

	return c.JSON(EvaluateResponse{
		Expression: req.Expression,
		Result:     result,
	})
}

// validate handles POST /api/v1/validate
func (s *Server) validate(c *fiber.Ctx) error {
	var req ExpressionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
		})
	}

	return c.JSON(ValidateResponse{
		Expression: req.Expression,
		Valid:      s.evaluator.Validate(req.Expression),
	})
}

// trace handles POST /api/v1/trace
func (s *Server) trace(c *fiber.Ctx) error {
	var req ExpressionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
		})
	}

	steps, err := s.evaluator.Trace(req.Expression)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   errorKind(err),
			Message: err.Error(),
		})
	}

	// A successful scan records one step per token and leaves exactly
	// one value on the final stack.
	result := steps[len(steps)-1].Stack[0]

	return c.JSON(TraceResponse{
		Expression: req.Expression,
		Result:     result,
		Steps:      steps,
	})
}

// listHistory handles GET /api/v1/history
func (s *Server) listHistory(c *fiber.Ctx) error {
	entries := s.history.List()
	return c.JSON(HistoryResponse{
		Entries: entries,
		Total:   len(entries),
	})
}

// clearHistory handles DELETE /api/v1/history
func (s *Server) clearHistory(c *fiber.Ctx) error {
	s.history.Clear()
	return c.JSON(SuccessResponse{
		Success: true,
		Message: "History cleared",
	})
}

// errorKind maps an evaluator error to its API error code.
func errorKind(err error) string {
	var (
		emptyErr   *rpn.EmptyExpressionError
		unknownErr *rpn.UnknownTokenError
		operandErr *rpn.InsufficientOperandsError
		extraErr   *rpn.TooManyOperandsError
		divErr     *rpn.DivisionByZeroError
		sqrtErr    *rpn.NegativeSqrtError
	)

	switch {
	case errors.As(err, &emptyErr):
		return "empty_expression"
	case errors.As(err, &unknownErr):
		return "unknown_token"
	case errors.As(err, &operandErr):
		return "insufficient_operands"
	case errors.As(err, &extraErr):
		return "too_many_operands"
	case errors.As(err, &divErr):
		return "division_by_zero"
	case errors.As(err, &sqrtErr):
		return "negative_sqrt"
	default:
		return "evaluation_failed"
	}
}
