package main

import (
	"context"
	goerrors "errors"
	"fmt"
	"item-lab/errors"
	"item-lab/infrastructure/grpc/server"
	"item-lab/infrastructure/storage"
	"item-lab/internal"
	"item-lab/observability"
	pb "item-lab/proto/items"
	"item-lab/services"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	grpc3 "github.com/mama165/sdk-go/grpc"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Item server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and returns once both servers have stopped,
// so deferred cleanups (pool close) always execute.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Database (SQLite pool opened eagerly so a bad DATABASE_URL fails at startup)
	pool := storage.NewPoolManager(storage.MainPool(), logger)
	defer func() {
		logger.Info("Closing database pool...")
		_ = pool.Close()
	}()
	db, err := pool.Acquire(ctx)
	if err != nil {
		if goerrors.Is(err, errors.ErrConfiguration) {
			return exitConfig, err
		}
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	if config.AutoMigrate {
		if err = storage.Migrate(ctx, db, logger); err != nil {
			return exitRuntime, fmt.Errorf("migration failed: %w", err)
		}
	}

	// 3. Services
	itemRepository := storage.NewItemRepository(pool, logger, config.StrictTimestamps)
	itemService := services.NewItemService(itemRepository, logger)
	monitoring := observability.NewMonitoringManager(logger, pool.Stats)
	go monitoring.Listen(ctx, config.MonitorInterval)

	errChan := make(chan error, 2)

	// 4. gRPC Server Setup
	address := config.GRPCAddress()
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
	}
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc3.UnaryLoggingInterceptor(logger),
			server.StatusInterceptor(logger),
			monitoring.UnaryInterceptor(),
		))
	pb.RegisterItemServiceServer(s, server.NewItemServer(logger, itemService))

	go func() {
		logger.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		if err := s.Serve(listener); err != nil && !goerrors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 5. HTTP Server Setup (HTTP_PORT=0 disables it)
	var httpServer *http.Server
	if config.HTTPPort != 0 {
		web := internal.NewWebServer(itemService, logger, monitoring.Snapshot)
		httpServer = &http.Server{
			Addr:              config.HTTPAddress(),
			Handler:           web.Router(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("Starting HTTP server", "address", httpServer.Addr)
			if err := httpServer.ListenAndServe(); err != nil && !goerrors.Is(err, http.ErrServerClosed) {
				errChan <- fmt.Errorf("HTTP server error: %w", err)
			}
		}()
	}

	// 6. Wait for Stop or Error
	code := exitOK
	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case runErr = <-errChan:
		code = exitRuntime
	}

	// 7. Final Cleanup (Graceful Shutdown)
	logger.Info("Shutting down gracefully...")
	if httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("HTTP server did not stop in time", "error", err)
		}
		cancel()
	}
	stopGRPC(s, config.ShutdownTimeout)
	logger.Info("Program stopped cleanly")

	return code, runErr
}

// stopGRPC drains in-flight calls, forcing the stop once the timeout elapses.
func stopGRPC(s *grpc.Server, timeout time.Duration) {
	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		s.Stop()
	}
}
