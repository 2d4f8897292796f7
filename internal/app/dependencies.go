package app

import (
	"context"
	"fmt"

	"github.com/avc-dev/link-shortener/internal/config/db"
	"github.com/avc-dev/link-shortener/internal/handler"
	"github.com/avc-dev/link-shortener/internal/middleware"
	"github.com/avc-dev/link-shortener/internal/migrations"
	"github.com/avc-dev/link-shortener/internal/repository"
	"github.com/avc-dev/link-shortener/internal/rpc"
	"github.com/avc-dev/link-shortener/internal/service"
	"github.com/avc-dev/link-shortener/internal/store"
	"github.com/avc-dev/link-shortener/internal/usecase"
	"go.uber.org/zap"
)

// initDependencies инициализирует все зависимости приложения
func (a *App) initDependencies(ctx context.Context) error {
	storage, pinger, err := a.initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	repo := repository.New(storage)

	a.clicks = service.NewClickProcessor(repo, service.ClickProcessorConfig{
		Workers:   a.config.Clicks.Workers,
		QueueSize: a.config.Clicks.QueueSize,
		Timeout:   a.config.Clicks.Timeout,
	}, a.reporter, a.logger)
	a.clicks.Start()

	codeService := service.NewCodeService(repo, a.config.CodeMaxAttempts)
	authService := service.NewAuthService(a.config.JWTSecret, a.config.TokenTTL)
	linkUsecase := usecase.NewLinkUsecase(repo, a.clicks, codeService, a.logger)

	h := handler.New(linkUsecase, a.logger, pinger, a.config.BaseURL.String())
	a.router = newRouter(h, middleware.NewAuthMiddleware(authService, a.logger), a.reporter, a.logger)
	a.grpcServer = rpc.NewServer(rpc.NewLinkServer(linkUsecase, a.logger), authService, a.logger)

	return nil
}

// initStorage выбирает хранилище: PostgreSQL, SQLite, файл, память (по убыванию приоритета)
func (a *App) initStorage(ctx context.Context) (repository.Store, handler.StoragePinger, error) {
	cfg := a.config

	switch {
	case cfg.DatabaseDSN != "":
		database, err := db.NewConfig(cfg.DatabaseDSN).Connect(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		a.dbPool = database

		// Драйвер migrate закрывает *sql.DB, пул pgx продолжает работать
		if err := migrations.NewMigrator(database.DB(), a.logger).RunUp(); err != nil {
			return nil, nil, err
		}

		a.logger.Info("Using database storage")
		return store.NewDatabaseStore(database.Pool()), database, nil

	case cfg.SQLitePath != "":
		sqliteStore, err := store.OpenSQLiteStore(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		a.closers = append(a.closers, sqliteStore.Close)

		a.logger.Info("Using sqlite storage")
		return sqliteStore, sqliteStore, nil

	case cfg.FileStoragePath != "":
		fileStore, err := store.NewFileStore(cfg.FileStoragePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create file store: %w", err)
		}

		a.logger.Info("Using file storage", zap.String("path", cfg.FileStoragePath))
		return fileStore, fileStore, nil

	default:
		memStore := store.NewStore()

		a.logger.Info("Using in-memory storage")
		return memStore, memStore, nil
	}
}
