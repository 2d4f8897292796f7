package rpc

import (
	"context"
	"strings"
	"time"

	"github.com/avc-dev/link-shortener/internal/middleware"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const healthServicePrefix = "/grpc.health.v1.Health/"

// AuthInterceptor проверяет bearer токен из метаданных authorization.
// Методы health сервиса доступны без токена.
func AuthInterceptor(resolver middleware.IdentityResolver, logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if strings.HasPrefix(info.FullMethod, healthServicePrefix) {
			return handler(ctx, req)
		}

		token := tokenFromMetadata(ctx)
		if token == "" {
			return nil, status.Error(codes.Unauthenticated, "Unauthorized")
		}

		userID, err := resolver.ResolveIdentity(ctx, token)
		if err != nil || userID == "" {
			logger.Debug("failed to authenticate rpc call",
				zap.String("method", info.FullMethod),
				zap.Error(err),
			)
			return nil, status.Error(codes.Unauthenticated, "Unauthorized")
		}

		return handler(middleware.WithUserID(ctx, userID), req)
	}
}

func tokenFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}

	for _, value := range md.Get("authorization") {
		scheme, token, found := strings.Cut(value, " ")
		if found && strings.EqualFold(scheme, "bearer") {
			return strings.TrimSpace(token)
		}
	}
	return ""
}

// LoggingInterceptor пишет в лог каждый вызов; внутренние ошибки логируются с уровнем Error
func LoggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err)
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("code", code.String()),
			zap.Duration("duration", time.Since(start)),
		}

		if code == codes.Internal || code == codes.Unknown {
			logger.Error("gRPC request", append(fields, zap.Error(err))...)
		} else {
			logger.Info("gRPC request", fields...)
		}

		return resp, err
	}
}
