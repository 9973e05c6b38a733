package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iwvelando/interest-calculator/internal/config"
	"github.com/iwvelando/interest-calculator/internal/server"
	"github.com/iwvelando/interest-calculator/internal/store"
	"github.com/iwvelando/interest-calculator/pkg/constants"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(app *application) *cobra.Command {
	var serverConfigPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), app, serverConfigPath)
		},
	}
	cmd.Flags().StringVar(&serverConfigPath, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	return cmd
}

func runServe(ctx context.Context, app *application, serverConfigPath string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	serverConf, err := server.LoadConfig(serverConfigPath)
	if err != nil {
		return err
	}

	logger := app.logger
	if serverConf.Logging != (config.LoggingConfig{}) {
		logger, err = initializeLogger(mergeLogging(app.conf.Logging, serverConf.Logging), app.logLevel)
		if err != nil {
			return err
		}
		defer func() {
			_ = logger.Sync()
		}()
	}

	results, closeStore, err := openStore(ctx, serverConf)
	if err != nil {
		return err
	}
	defer closeStore()

	handler := server.NewHandler(logger, results, server.Options{
		MaxBodySize:     serverConf.BodySizeBytes(),
		Version:         version,
		DefaultCurrency: app.conf.Defaults.Currency,
		Report:          app.conf.Export.ReportOptions(),
		RateLimit:       serverConf.RateLimit,
	})

	srv := &http.Server{
		Addr:         serverConf.Address,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("serving calculator API",
			zap.String("op", "serve"),
			zap.String("address", serverConf.Address),
			zap.String("sessionBackend", serverConf.SessionBackend),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
		logger.Info("shutting down server", zap.String("op", "serve"))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error during server shutdown: %w", err)
	}
	logger.Info("server exited", zap.String("op", "serve"))
	return nil
}

func openStore(ctx context.Context, conf *server.Config) (store.Store, func(), error) {
	if conf.SessionBackend != constants.SessionBackendRedis {
		return store.NewMemory(conf.SessionTTLDuration()), func() {}, nil
	}

	results := store.NewRedis(conf.RedisAddress, conf.SessionTTLDuration())
	if ctx == nil {
		ctx = context.Background()
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := results.Ping(pingCtx); err != nil {
		_ = results.Close()
		return nil, nil, fmt.Errorf("failed to reach redis at %s: %w", conf.RedisAddress, err)
	}
	return results, func() { _ = results.Close() }, nil
}

// mergeLogging overlays the non-empty server logging settings on base.
func mergeLogging(base, override config.LoggingConfig) config.LoggingConfig {
	if override.Level != "" {
		base.Level = override.Level
	}
	if override.Format != "" {
		base.Format = override.Format
	}
	if override.OutputFile != "" {
		base.OutputFile = override.OutputFile
	}
	return base
}
