package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	application "service/internal/app"
	"service/internal/gateway/kafka/change_events"
	"service/internal/migrations"
	"service/internal/pkg/config"
	"service/internal/pkg/dotenv"
	"service/internal/pkg/grpcserver"
	"service/internal/pkg/kafka"
	metrics_system "service/internal/pkg/metrics"
	"service/internal/pkg/postgres"
	"service/internal/service/crud"
	"service/pkg/logger"
	"service/pkg/logger/zap_adapter"
)

func main() {
	envLoaded, envErr := dotenv.Load(".env", os.Args[1:])

	// до загрузки конфигурации пишем с уровнем info
	bootLogger, err := zap_adapter.NewZapAdapter("")
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	bootLog := bootLogger.With()

	if envErr != nil {
		bootLog.Error("failed to load .env file", logger.NewField("error", envErr))
		return
	}
	if !envLoaded {
		bootLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		bootLog.Error("load config", logger.NewField("error", err))
		return
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.Log.Level)
	if err != nil {
		bootLog.Error("failed to initialize logger", logger.NewField("error", err))
		return
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With(
		logger.NewField("log_level", cfg.Log.Level),
	)

	mainLog.Info("starting delivery-service application")

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // ongoingCtx и shutdownCtx намеренно наследуются от context.Background()
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := migrations.Up(ctx, pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		runLog.Info("database migrations applied")
	}

	notifier, closeNotifier, err := newNotifier(ctx, log, &cfg.Kafka)
	if err != nil {
		return fmt.Errorf("change events: %w", err)
	}
	defer closeNotifier()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, notifier, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx, 0)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server, pool),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				pprofServerErr <- err
			}
		}()
	}

	var healthServer *grpcserver.HealthServer
	var healthServerErr chan error
	if cfg.GRPC.HealthPort != "" {
		lis, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.GRPC.HealthPort))
		if err != nil {
			return fmt.Errorf("grpc health listen: %w", err)
		}

		healthServer = grpcserver.NewHealthServer(log)
		healthServerErr = make(chan error, 1)
		go func() {
			defer close(healthServerErr)
			if err := healthServer.Serve(lis); err != nil {
				healthServerErr <- err
			}
		}()
	}

	// nil каналы выключенных серверов в select никогда не срабатывают
	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr:
		return fmt.Errorf("pprof server: %w", err)
	case err := <-healthServerErr:
		return fmt.Errorf("grpc health server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)
	if healthServer != nil {
		healthServer.SetServing(false)
	}

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}
	if healthServer != nil {
		healthServer.Stop()
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

// newNotifier при выключенной публикации возвращает Noop, закрывать нечего.
func newNotifier(ctx context.Context, log logger.Logger, cfg *config.Kafka) (crud.Notifier, func(), error) {
	if !cfg.Enabled {
		return change_events.Noop{}, func() {}, nil
	}

	producer, err := kafka.NewSyncProducer(ctx, log, cfg)
	if err != nil {
		return nil, nil, err
	}

	publisher := change_events.New(log, producer, cfg.ChangesTopic)

	closePublisher := func() {
		publisher.Close()
		if err := producer.Close(); err != nil {
			log.Error("failed to close kafka producer", logger.NewField("error", err))
		}
	}

	return publisher, closePublisher, nil
}
