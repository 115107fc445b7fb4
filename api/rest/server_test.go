package rest

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eniolaSamuel/RPNCalculator/internal/history"
	"github.com/eniolaSamuel/RPNCalculator/internal/rpn"
)

func newTestServer() *Server {
	return NewServer(rpn.NewEvaluator(), history.NewStore(10), nil)
}

func postJSON(t *testing.T, server *Server, path, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := server.App().Test(req)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestHealthCheck(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := server.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var result HealthResponse
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, "healthy", result.Status)
}

func TestReadyCheck(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest("GET", "/api/v1/ready", nil)
	resp, err := server.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var result ReadyResponse
	require.NoError(t, json.Unmarshal(body, &result))
	assert.True(t, result.Ready)
}

func TestIndexPage(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest("GET", "/", nil)
	resp, err := server.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "RPN Calculator")
}

func TestEvaluate(t *testing.T) {
	server := newTestServer()

	status, body := postJSON(t, server, "/api/v1/evaluate", `{"expression": "3 4 + 5 *"}`)
	assert.Equal(t, fiber.StatusOK, status)

	var result EvaluateResponse
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, "3 4 + 5 *", result.Expression)
	assert.Equal(t, 35.0, result.Result)
}

func TestEvaluate_ErrorKinds(t *testing.T) {
	server := newTestServer()

	tests := []struct {
		name       string
		expression string
		kind       string
	}{
		{name: "empty", expression: "", kind: "empty_expression"},
		{name: "whitespace only", expression: "   ", kind: "empty_expression"},
		{name: "unknown token", expression: "3 foo +", kind: "unknown_token"},
		{name: "insufficient operands", expression: "+", kind: "insufficient_operands"},
		{name: "too many operands", expression: "3 4", kind: "too_many_operands"},
		{name: "division by zero", expression: "8 0 /", kind: "division_by_zero"},
		{name: "negative sqrt", expression: "-4 sqrt", kind: "negative_sqrt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reqBody, _ := json.Marshal(ExpressionRequest{Expression: tt.expression})
			status, body := postJSON(t, server, "/api/v1/evaluate", string(reqBody))
			assert.Equal(t, fiber.StatusBadRequest, status)

			var result ErrorResponse
			require.NoError(t, json.Unmarshal(body, &result))
			assert.Equal(t, tt.kind, result.Error)
			assert.NotEmpty(t, result.Message)
		})
	}
}

func TestEvaluate_InvalidBody(t *testing.T) {
	server := newTestServer()

	status, body := postJSON(t, server, "/api/v1/evaluate", `{not json`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	var result ErrorResponse
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, "invalid_request", result.Error)
}

func TestEvaluate_AppendsHistory(t *testing.T) {
	store := history.NewStore(10)
	server := NewServer(rpn.NewEvaluator(), store, nil)

	postJSON(t, server, "/api/v1/evaluate", `{"expression": "3 4 +"}`)
	postJSON(t, server, "/api/v1/evaluate", `{"expression": "9 sqrt"}`)

	// Failed evaluations are not recorded.
	postJSON(t, server, "/api/v1/evaluate", `{"expression": "8 0 /"}`)

	records := store.List()
	require.Len(t, records, 2)
	assert.Equal(t, "9 sqrt", records[0].Expression)
	assert.Equal(t, "3 4 +", records[1].Expression)
}

func TestValidate(t *testing.T) {
	server := newTestServer()

	tests := []struct {
		expression string
		valid      bool
	}{
		{expression: "3 4 +", valid: true},
		{expression: "3 4", valid: false},
		{expression: "", valid: false},
	}

	for _, tt := range tests {
		reqBody, _ := json.Marshal(ExpressionRequest{Expression: tt.expression})
		status, body := postJSON(t, server, "/api/v1/validate", string(reqBody))
		assert.Equal(t, fiber.StatusOK, status)

		var result ValidateResponse
		require.NoError(t, json.Unmarshal(body, &result))
		assert.Equal(t, tt.valid, result.Valid, "expression: %q", tt.expression)
	}
}

func TestTrace(t *testing.T) {
	server := newTestServer()

	status, body := postJSON(t, server, "/api/v1/trace", `{"expression": "3 4 +"}`)
	assert.Equal(t, fiber.StatusOK, status)

	var result TraceResponse
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, 7.0, result.Result)
	require.Len(t, result.Steps, 3)
	assert.Equal(t, "3", result.Steps[0].Token)
	assert.Equal(t, []float64{3, 4}, result.Steps[1].Stack)
	assert.Equal(t, []float64{7}, result.Steps[2].Stack)
}

func TestTrace_Error(t *testing.T) {
	server := newTestServer()

	status, body := postJSON(t, server, "/api/v1/trace", `{"expression": "8 0 /"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	var result ErrorResponse
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, "division_by_zero", result.Error)
}

func TestTrace_DoesNotTouchHistory(t *testing.T) {
	store := history.NewStore(10)
	server := NewServer(rpn.NewEvaluator(), store, nil)

	postJSON(t, server, "/api/v1/trace", `{"expression": "3 4 +"}`)
	assert.Equal(t, 0, store.Len())
}

func TestHistoryEndpoints(t *testing.T) {
	server := newTestServer()

	postJSON(t, server, "/api/v1/evaluate", `{"expression": "3 4 +"}`)
	postJSON(t, server, "/api/v1/evaluate", `{"expression": "2 3 ^"}`)

	req := httptest.NewRequest("GET", "/api/v1/history", nil)
	resp, err := server.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var result HistoryResponse
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, 2, result.Total)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, "2 3 ^", result.Entries[0].Expression)
	assert.Equal(t, 8.0, result.Entries[0].Result)

	// Clear and verify empty.
	req = httptest.NewRequest("DELETE", "/api/v1/history", nil)
	resp, err = server.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("GET", "/api/v1/history", nil)
	resp, err = server.App().Test(req)
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, 0, result.Total)
}

func TestNewServer_NilDefaults(t *testing.T) {
	server := NewServer(nil, nil, nil)

	status, _ := postJSON(t, server, "/api/v1/evaluate", `{"expression": "1 2 +"}`)
	assert.Equal(t, fiber.StatusOK, status)
}
