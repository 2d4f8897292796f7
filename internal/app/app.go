package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/avc-dev/link-shortener/internal/config"
	"github.com/avc-dev/link-shortener/internal/config/db"
	"github.com/avc-dev/link-shortener/internal/logger"
	"github.com/avc-dev/link-shortener/internal/service"
	"github.com/avc-dev/link-shortener/internal/telemetry"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// ServiceName имя сервиса в трассировке
const ServiceName = "link-shortener"

// App представляет приложение сокращения ссылок
type App struct {
	config     *config.Config
	logger     *zap.Logger
	router     http.Handler
	grpcServer *grpc.Server
	clicks     *service.ClickProcessor
	reporter   *telemetry.Reporter
	dbPool     db.Database
	// closers освобождают ресурсы хранилищ, не относящихся к PostgreSQL
	closers         []func() error
	shutdownTracing telemetry.ShutdownFunc
}

// New собирает приложение по конфигурации
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	app := &App{
		config: cfg,
		logger: log,
	}

	shutdownTracing, err := telemetry.SetupTracing(ctx, ServiceName, cfg.OTelEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to set up tracing: %w", err)
	}
	app.shutdownTracing = shutdownTracing

	reporter, err := telemetry.NewReporter(telemetry.SentryConfig{
		DSN:         cfg.Sentry.DSN,
		Environment: cfg.Sentry.Environment,
	}, log)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to set up error reporting: %w", err)
	}
	app.reporter = reporter

	if err := app.initDependencies(ctx); err != nil {
		app.Close()
		return nil, err
	}

	return app, nil
}

// Run загружает конфигурацию, запускает серверы и блокируется до сигнала остановки
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Config{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signalContext()
	defer stop()

	app, err := New(ctx, cfg, log)
	if err != nil {
		log.Error("Failed to initialize application", zap.Error(err))
		return err
	}
	defer app.Close()

	return app.serve(ctx)
}

// Close останавливает фоновую обработку и освобождает ресурсы.
// Безопасен для частично собранного приложения.
func (a *App) Close() {
	if a.clicks != nil {
		a.clicks.Stop()
		a.clicks = nil
	}

	for _, closer := range a.closers {
		if err := closer(); err != nil {
			a.logger.Error("Failed to close storage", zap.Error(err))
		}
	}
	a.closers = nil

	if a.dbPool != nil {
		a.dbPool.Close()
		a.logger.Info("Database connection pool closed")
		a.dbPool = nil
	}

	if a.reporter != nil {
		a.reporter.Flush(2 * time.Second)
	}

	if a.shutdownTracing != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.shutdownTracing(ctx); err != nil {
			a.logger.Error("Failed to shut down tracing", zap.Error(err))
		}
		a.shutdownTracing = nil
	}
}
