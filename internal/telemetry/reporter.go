package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// SentryConfig параметры отправки ошибок в Sentry
type SentryConfig struct {
	DSN         string
	Environment string
	Release     string
}

// Reporter принимает ошибки, которые не доходят до клиента (фоновые задачи).
// Ошибка всегда пишется в лог; при заданном DSN дополнительно уходит в Sentry.
type Reporter struct {
	hub    *sentry.Hub
	logger *zap.Logger
}

// NewReporter создает Reporter. Пустой DSN отключает Sentry.
func NewReporter(cfg SentryConfig, logger *zap.Logger) (*Reporter, error) {
	if cfg.DSN == "" {
		return &Reporter{logger: logger}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      cfg.Environment,
		Release:          cfg.Release,
		AttachStacktrace: true,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Sentry error reporting enabled", zap.String("environment", cfg.Environment))

	return &Reporter{hub: sentry.CurrentHub(), logger: logger}, nil
}

// Enabled сообщает, отправляются ли ошибки в Sentry
func (r *Reporter) Enabled() bool {
	return r.hub != nil
}

// Report фиксирует ошибку с тегами. Идентификатор трассы из ctx добавляется в теги.
func (r *Reporter) Report(ctx context.Context, err error, tags map[string]string) {
	if err == nil {
		return
	}

	traceID := ""
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		traceID = sc.TraceID().String()
	}

	fields := make([]zap.Field, 0, len(tags)+2)
	fields = append(fields, zap.Error(err))
	for k, v := range tags {
		fields = append(fields, zap.String(k, v))
	}
	if traceID != "" {
		fields = append(fields, zap.String("trace_id", traceID))
	}
	r.logger.Debug("reporting background error", fields...)

	if r.hub == nil {
		return
	}

	hub := r.hub.Clone()
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		if traceID != "" {
			scope.SetTag("trace_id", traceID)
		}
		hub.CaptureException(err)
	})
}

// Flush дожидается отправки накопленных событий
func (r *Reporter) Flush(timeout time.Duration) bool {
	if r.hub == nil {
		return true
	}
	return r.hub.Flush(timeout)
}

// HTTPMiddleware привязывает hub Sentry к запросу и сообщает о паниках.
// Без Sentry возвращает обработчик без изменений.
func (r *Reporter) HTTPMiddleware() func(http.Handler) http.Handler {
	if r.hub == nil {
		return func(next http.Handler) http.Handler { return next }
	}

	handler := sentryhttp.New(sentryhttp.Options{
		Repanic: true,
		Timeout: 2 * time.Second,
	})
	return handler.Handle
}
