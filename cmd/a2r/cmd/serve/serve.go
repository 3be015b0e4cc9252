package serve

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"audio-redact/internal/api/server"
	"audio-redact/internal/api/v1/services"
	"audio-redact/internal/app"
)

var host string
var port string
var environment string

func init() {
	Cmd.Flags().StringVar(&host, "host", envOrDefault("A2R_HOST", "0.0.0.0"), "interface to bind the API server to")
	Cmd.Flags().StringVar(&port, "port", envOrDefault("A2R_PORT", "8080"), "port to bind the API server to")
	Cmd.Flags().StringVar(&environment, "env", envOrDefault("ENV", "production"), "environment: development or production")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the redaction HTTP API server",
	Long: `Start the redaction HTTP API server

- POST /api/v1/redactions to redact a single file
- GET /metrics for Prometheus, /swagger for the API docs
- Shuts down gracefully on SIGINT/SIGTERM`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		var storageService services.StorageService
		if os.Getenv("MINIO_ENDPOINT") != "" {
			minioService, err := services.NewMinioStorageService()
			if err != nil {
				logger.Warn("MinIO unavailable, falling back to mock storage", "error", err)
				storageService = services.NewMockStorageService()
			} else {
				storageService = minioService
			}
		} else {
			storageService = services.NewMockStorageService()
		}

		redactionService := app.InitializeRedactionService()

		srv := server.NewServer(server.Config{
			Host:         host,
			Port:         port,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  120 * time.Second,
			Environment:  environment,
		}, redactionService, storageService, logger)

		if err := srv.Start(); err != nil {
			logger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		logger.Info("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Server forced to shutdown", "error", err)
			os.Exit(1)
		}
		logger.Info("Server exited")
	},
}

func envOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
