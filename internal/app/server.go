package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// serve запускает HTTP и gRPC серверы и корректно останавливает их при отмене ctx
func (a *App) serve(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:    a.config.ServerAddress.String(),
		Handler: a.router,
	}

	grpcListener, err := net.Listen("tcp", a.config.GRPCAddress.String())
	if err != nil {
		return fmt.Errorf("failed to listen gRPC address: %w", err)
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("Starting HTTP server",
			zap.String("address", httpServer.Addr),
			zap.String("base_url", a.config.BaseURL.String()),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		a.logger.Info("Starting gRPC server", zap.String("address", grpcListener.Addr().String()))
		if err := a.grpcServer.Serve(grpcListener); err != nil {
			return fmt.Errorf("gRPC server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Info("Shutting down servers")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
		defer cancel()

		a.grpcServer.GracefulStop()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("HTTP server shutdown failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		a.logger.Error("Server stopped with error", zap.Error(err))
		return err
	}

	a.logger.Info("Servers stopped")
	return nil
}
