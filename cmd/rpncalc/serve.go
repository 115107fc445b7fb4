package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eniolaSamuel/RPNCalculator/api/rest"
	"github.com/eniolaSamuel/RPNCalculator/internal/config"
	"github.com/eniolaSamuel/RPNCalculator/internal/history"
	"github.com/eniolaSamuel/RPNCalculator/internal/rpn"
	"github.com/eniolaSamuel/RPNCalculator/pkg/logger"
)

var serveAddress string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the calculator HTTP server",
	Long: `Start the HTTP server exposing the calculator web form and the
JSON API (evaluate, validate, trace, history).`,
	Example: `  # Start with defaults
  rpncalc serve

  # Listen on a different address
  rpncalc serve --address :9090

  # Use a config file
  rpncalc serve --config config.yaml`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddress, "address", "", "listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	loader := config.NewLoader()
	if cfgFile != "" {
		loader = loader.WithConfigPath(cfgFile)
	}

	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cmd.Flags().Changed("address") {
		cfg.Server.Address = serveAddress
	}
	if debug {
		cfg.Logging.Level = "debug"
	}

	logger.Init(&logger.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Output:     cfg.Logging.Output,
		FilePath:   cfg.Logging.FilePath,
		MaxSize:    cfg.Logging.MaxSize,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAge:     cfg.Logging.MaxAge,
	})
	defer logger.Sync()

	store := history.NewStore(cfg.History.Capacity)
	server := rest.NewServer(rpn.NewEvaluator(), store, &rest.Config{
		Address:      cfg.Server.Address,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		EnableCORS:   cfg.Server.EnableCORS,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		logger.Info("shutting down")
		cancel()
	}()

	logger.Info("starting calculator server",
		zap.String("address", cfg.Server.Address),
		zap.Int("history_capacity", store.Capacity()))

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	if err := server.ShutdownWithTimeout(10 * time.Second); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
