package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"bankledger/internal/api"
	"bankledger/internal/processor"
	"bankledger/internal/repository/memory"
	"bankledger/internal/service"
	"bankledger/pkg/accountnum"
	"bankledger/pkg/crypto"
	"bankledger/pkg/metrics"
)

const (
	appName = "bankledger"
)

func main() {
	// Missing .env is fine: deployed environments set real variables.
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, ".env not found, using system environment")
	}

	logger := setupLogger()
	logger.Info("Starting application",
		slog.String("name", appName))

	metricsCollector := metrics.NewMetricsCollector(logger)
	pinHasher := crypto.NewPinHasher(bcryptCost(), logger)
	numbers := accountnum.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(os.Getpid())))
	accountRepo := memory.NewAccountRepository(numbers)
	txRepo := memory.NewTransactionRepository()
	accountService := service.NewAccountService(accountRepo, pinHasher, logger)
	txProcessor := processor.NewTransactionProcessor(accountRepo, txRepo, pinHasher, metricsCollector, logger)
	apiHandler := api.NewAPIHandler(accountService, txProcessor, metricsCollector, logger)
	metricsServer := metricsCollector.StartMetricsServer(envOr("METRICS_ADDR", ":9090"))
	httpServer := startHTTPServer(apiHandler, envOr("HTTP_ADDR", ":8080"), logger)
	waitForShutdown(logger, httpServer, metricsServer)
	logger.Info("Application shutdown complete")
}

func setupLogger() *slog.Logger {
	level := slog.LevelInfo
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		_ = level.UnmarshalText([]byte(v))
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}

func bcryptCost() int {
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if cost, err := strconv.Atoi(v); err == nil {
			return cost
		}
	}
	return bcrypt.DefaultCost
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func startHTTPServer(apiHandler *api.APIHandler, addr string, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()

	apiHandler.RegisterRoutes(mux)

	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"name": "%s", "status": "ok"}`, appName)
	})

	server := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting HTTP server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	return server
}

func waitForShutdown(logger *slog.Logger, httpServer *http.Server, metricsServer *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	logger.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(ctx); err != nil {
		logger.Error("Metrics server shutdown failed", slog.String("error", err.Error()))
	}
}
