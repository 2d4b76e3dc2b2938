package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	grpc2 "github.com/mama165/sdk-go/grpc"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"

	"storysplit/agent"
	"storysplit/auth"
	"storysplit/infrastructure/grpc/server"
	"storysplit/internal"
	"storysplit/invest"
	"storysplit/observability"
	"storysplit/projection"
	pb2 "storysplit/proto/account"
	pb1 "storysplit/proto/collab"
	"storysplit/repositories"
	"storysplit/runtime"
	"storysplit/runtime/workers"
	"storysplit/services"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for gRPC and background workers.
func run() (int, error) {
	// 1. Configuration & Logger
	// A local .env is optional, real deployments set the environment.
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()

	// 2. Storage (BadgerDB + Bluge)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		// Defer ensures the database lock is released and buffers are flushed before the function returns.
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	// 3. Heuristic agents
	// Keyword dictionaries are embedded; the Aho-Corasick automatons are
	// built once at boot.
	keywords, err := invest.NewKeywordLoader(invest.KeywordFiles).LoadAll("keywords")
	if err != nil {
		return exitRuntime, fmt.Errorf("keyword loading failed: %w", err)
	}
	logger.Info(fmt.Sprintf("%d keyword dictionaries loaded [%s]",
		len(keywords.Languages), strings.Join(keywords.Languages, ",")))

	splitter, err := invest.NewSplitter(keywords, logger)
	if err != nil {
		return exitRuntime, fmt.Errorf("splitter build failed: %w", err)
	}
	coach := agent.New(invest.NewScorer(), splitter, logger)

	// 4. Supervision & Orchestration
	monitoring := observability.NewManager(logger)
	sup := workers.NewSupervisor(logger, config.RestartInterval)
	registry := runtime.NewRegistry()
	storyRepository := repositories.NewStoryRepository(db, logger)
	epicRepository := repositories.NewEpicRepository(db)
	feedbackRepository := repositories.NewFeedbackRepository(db, logger, config.LimitFeedback)
	userRepository := repositories.NewUserRepository(db)
	searchIndex := repositories.NewSearchIndex(blugeWriter, logger)

	orchestrator := runtime.NewOrchestrator(
		logger, sup, registry,
		storyRepository, epicRepository, feedbackRepository, searchIndex,
		coach, monitoring,
		runtime.Config{
			NumWorkers:        config.NumberOfWorkers,
			BufferSize:        config.BufferSize,
			SinkTimeout:       config.SinkTimeout,
			TypingTTL:         config.TypingTTL,
			TypingSweep:       config.TypingSweepInterval,
			HeartbeatInterval: config.HeartbeatInterval,
		},
	)

	// The live board projection feeds the inspector.
	boardView := projection.NewBoard()
	orchestrator.RegisterSinks(boardView)

	if config.DebugPort != nil {
		endpoint := "/inspect"
		logger.Info("Debug inspector available",
			"url", fmt.Sprintf("http://localhost:%d%s", *config.DebugPort, endpoint))
		internal.StartDebugServer(db, *config.DebugPort, endpoint, internal.DefaultMapper, func() map[string]any {
			stats := monitoring.GetLatest()
			return map[string]any{
				"commands_dispatched": stats.CommandsDispatched,
				"commands_dropped":    stats.CommandsDropped,
				"events_dispatched":   stats.EventsDispatched,
				"subscribers_dropped": stats.SubscribersDropped,
				"worker_restarts":     stats.WorkerRestarts,
				"alloc_mem_mb":        stats.AllocMemMb,
				"process_cpu":         fmt.Sprintf("%.1f%%", stats.ProcessCPU),
				"goroutines":          stats.NumGoroutine,
			}
		})
	}

	// 5. Context & Signals
	// NotifyContext captures OS signals and cancels the context to trigger a shutdown.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Error (gRPC & Orchestrator)
	errChan := make(chan error, 2)

	// 6. Start the Engine (Workers and Fanout)
	go func() {
		logger.Info("Starting orchestrator...")
		if err := orchestrator.Start(ctx); err != nil {
			errChan <- fmt.Errorf("orchestrator error: %w", err)
		}
	}()

	// 7. gRPC Server Setup
	address := fmt.Sprintf("0.0.0.0:%d", config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc2.UnaryLoggingInterceptor(logger),
			auth.UnaryAuthInterceptor,
		),
		grpc.StreamInterceptor(auth.StreamAuthInterceptor),
	)
	storyService := services.NewStoryService(orchestrator,
		storyRepository, epicRepository, feedbackRepository, searchIndex, coach)
	authService := services.NewAuthService(userRepository, config.AuthTokenDuration)
	collabServer := server.NewCollabServer(logger, storyService, config.ConnectionBufferSize, config.DeliveryTimeout)
	accountServer := server.NewAccountServer(logger, authService)
	pb1.RegisterCollabServiceServer(s, collabServer)
	pb2.RegisterAccountServiceServer(s, accountServer)

	// Use an error channel to capture Serve() issues asynchronously.
	go func() {
		logger.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		for serviceName := range s.GetServiceInfo() {
			logger.Debug("gRPC exposed services", "name", serviceName)
		}
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	// The execution blocks here until either a signal is received or the server crashes.
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 9. Final Cleanup (Graceful Shutdown)
	// We allow active gRPC streams to finish and workers to drain their channels.
	logger.Info("Shutting down gracefully...")
	s.GracefulStop()
	orchestrator.Stop()
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG).
			WithBypassLockGuard(true)
	} else {
		options = options.WithLoggingLevel(badger.INFO)
	}

	return options
}
