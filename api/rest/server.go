package rest

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/eniolaSamuel/RPNCalculator/internal/history"
	"github.com/eniolaSamuel/RPNCalculator/internal/rpn"
)

//go:embed static/index.html
var indexHTML []byte

// Server represents the calculator HTTP server.
type Server struct {
	app       *fiber.App
	evaluator rpn.Evaluator
	history   *history.Store
	config    *Config
}

// Config holds the configuration for the HTTP server.
type Config struct {
	// Address is the address to listen on (e.g., ":8080").
	Address string `yaml:"address"`

	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// EnableCORS enables Cross-Origin Resource Sharing.
	EnableCORS bool `yaml:"enable_cors"`
}

// DefaultConfig returns a default server configuration.
func DefaultConfig() *Config {
	return &Config{
		Address:      ":8080",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		EnableCORS:   true,
	}
}

// NewServer creates a new calculator HTTP server.
func NewServer(evaluator rpn.Evaluator, hist *history.Store, config *Config) *Server {
	if config == nil {
		config = DefaultConfig()
	}
	if evaluator == nil {
		evaluator = rpn.NewEvaluator()
	}
	if hist == nil {
		hist = history.NewStore(history.DefaultCapacity)
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		ErrorHandler: customErrorHandler,
		AppName:      "RPN Calculator API",
	})

	server := &Server{
		app:       app,
		evaluator: evaluator,
		history:   hist,
		config:    config,
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

// setupMiddleware configures middleware for the server.
func (s *Server) setupMiddleware() {
	// Recovery middleware - recovers from panics
	s.app.Use(fiberrecover.New(fiberrecover.Config{
		EnableStackTrace: true,
	}))

	// Logger middleware - logs HTTP requests
	s.app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	// CORS middleware
	if s.config.EnableCORS {
		s.app.Use(cors.New(cors.Config{
			AllowOrigins: "*",
			AllowMethods: "GET,POST,DELETE,OPTIONS",
			AllowHeaders: "Origin,Content-Type,Accept",
			MaxAge:       86400,
		}))
	}
}

// setupRoutes configures the API routes.
func (s *Server) setupRoutes() {
	// Web form
	s.app.Get("/", s.indexPage)

	// Health check endpoints
	s.app.Get("/health", s.healthCheck)
	s.app.Get("/ready", s.readyCheck)

	// API v1 routes
	api := s.app.Group("/api/v1")

	api.Get("/health", s.healthCheck)
	api.Get("/ready", s.readyCheck)

	// Calculator routes
	api.Post("/evaluate", s.evaluate)
	api.Post("/validate", s.validate)
	api.Post("/trace", s.trace)

	// History routes
	api.Get("/history", s.listHistory)
	api.Delete("/history", s.clearHistory)
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	return s.app.Listen(s.config.Address)
}

// StartWithContext starts the HTTP server with context support.
func (s *Server) StartWithContext(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		errCh <- s.app.Listen(s.config.Address)
	}()

	select {
	case <-ctx.Done():
		return s.Shutdown()
	case err := <-errCh:
		return err
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// ShutdownWithTimeout gracefully shuts down the server with a timeout.
func (s *Server) ShutdownWithTimeout(timeout time.Duration) error {
	return s.app.ShutdownWithTimeout(timeout)
}

// App returns the underlying Fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// customErrorHandler handles errors returned by handlers.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(ErrorResponse{
		Error:   fmt.Sprintf("error_%d", code),
		Message: message,
	})
}
