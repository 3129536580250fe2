package main

import (
	"chat-relay/contract"
	grpcinfra "chat-relay/infrastructure/grpc"
	"chat-relay/infrastructure/websocket"
	"chat-relay/ledger"
	"chat-relay/observability"
	"chat-relay/repositories"
	"chat-relay/runtime"
	"chat-relay/runtime/workers"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	grpc3 "github.com/mama165/sdk-go/grpc"
	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"google.golang.org/grpc"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Relay terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	// 1. Configuration & Logger
	// A missing .env is fine: the environment alone may carry the config.
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()

	// 2. Dedupe store
	dedupe, closeStore, err := openDedupeStore(ctx, config, logger)
	if err != nil {
		return exitRuntime, err
	}
	defer closeStore()

	// 3. Ledger
	ledgerClient, err := ledger.NewClient(logger, config.HederaNetwork,
		config.OperatorAccountID, config.OperatorPrivateKey, config.LedgerTimeout)
	if err != nil {
		return exitConfig, fmt.Errorf("ledger client: %w", err)
	}
	defer func() {
		logger.Info("Closing ledger client...")
		_ = ledgerClient.Close()
	}()
	subscriber := ledger.NewSubscriber(logger, ledgerClient)

	// 4. Metrics, hub, health & relay
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics := observability.NewMetrics(registry)
	hub := runtime.NewHub(logger, metrics, config.ConnectionBufferSize)
	health := grpcinfra.NewHealthServer(logger)
	supervisor := workers.NewSupervisor(logger, config.RestartInterval)
	supervisor.Add(workers.NewHeartbeatWorker(logger, config.MetricInterval, hub.Count, metrics))

	relay := runtime.NewRelay(logger, runtime.RelayConfig{
		TopicID:                config.TopicID,
		OperatorAccount:        config.OperatorAccountID,
		RequiredFee:            config.RequiredFeeTinybar,
		ReplyText:              config.AgentReply,
		ReplyFrom:              config.AgentName,
		SubscriptionBufferSize: config.SubscriptionBufferSize,
		MaxInFlight:            config.MaxInFlight,
		StoreTimeout:           config.StoreTimeout,
		LedgerTimeout:          config.LedgerTimeout,
		MetricInterval:         config.MetricInterval,
	}, dedupe, ledgerClient, subscriber, hub, supervisor, health, metrics)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Without the subscription nothing would ever be broadcast.
	if err = relay.Start(ctx); err != nil {
		return exitRuntime, err
	}

	errChan := make(chan error, 2)

	// 6. gRPC health server
	healthAddress := fmt.Sprintf("%s:%d", config.Host, config.HealthPort)
	healthListener, err := net.Listen("tcp", healthAddress)
	if err != nil {
		relay.Stop()
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", healthAddress, err)
	}
	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(grpc3.UnaryLoggingInterceptor(logger)))
	health.Register(grpcServer)
	go func() {
		logger.Info("Starting gRPC health server", "address", healthAddress)
		if err := grpcServer.Serve(healthListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 7. Websocket server
	server := websocket.NewServer(logger, hub, metrics, websocket.Config{
		InboundRate:  config.InboundRate,
		InboundBurst: config.InboundBurst,
		Gatherer:     registry,
	})
	go func() {
		if err := server.Listen(fmt.Sprintf("%s:%d", config.Host, config.Port)); err != nil {
			errChan <- fmt.Errorf("websocket server error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	code := exitOK
	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case runErr = <-errChan:
		code = exitRuntime
	}

	// 9. Graceful shutdown: stop intake first, then let in-flight payments finish.
	logger.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("Websocket server shutdown incomplete", "error", err)
	}
	health.Shutdown()
	grpcServer.GracefulStop()
	relay.Stop()
	logger.Info("Program stopped cleanly")

	return code, runErr
}

func openDedupeStore(ctx context.Context, config Config, logger *slog.Logger) (contract.IDedupeStore, func(), error) {
	switch config.DedupeBackend {
	case backendBadger:
		db, err := badger.Open(buildBadgerOpts(ctx, config, logger))
		if err != nil {
			return nil, nil, fmt.Errorf("database opening failed: %w", err)
		}
		if logger.Enabled(ctx, slog.LevelDebug) {
			logger.Info("Debug Badger inspector available",
				"url", fmt.Sprintf("http://localhost:%d/inspect", config.DebugPort))
			database.StartDebugServer(db, config.DebugPort, "/inspect", database.DefaultMapper)
		}
		return repositories.NewDedupeRepository(db, logger), func() {
			logger.Info("Closing BadgerDB...")
			_ = db.Close()
		}, nil
	default:
		rdb := repositories.NewRedisClient(config.RedisAddr, config.RedisPassword, config.RedisTLS)
		pingCtx, cancel := context.WithTimeout(ctx, config.StoreTimeout)
		defer cancel()
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("redis unreachable at %s: %w", config.RedisAddr, err)
		}
		return repositories.NewRedisDedupeRepository(rdb, logger, ""), func() {
			logger.Info("Closing Redis client...")
			_ = rdb.Close()
		}, nil
	}
}

func buildBadgerOpts(ctx context.Context, config Config, logger *slog.Logger) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)
	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG)
	} else {
		options = options.WithLoggingLevel(badger.INFO)
	}
	return options
}
