package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"github.com/avc-dev/link-shortener/internal/usecase"
	"go.uber.org/zap"
)

// Recoverer перехватывает панику обработчика и отвечает 500 в формате ошибок API.
// http.ErrAbortHandler пробрасывается дальше: им обработчик сам обрывает соединение.
func Recoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Error("panic while handling request",
					zap.Any("panic", rec),
					zap.String("method", r.Method),
					zap.String("uri", r.RequestURI),
					zap.String("request_id", GetRequestID(r.Context())),
					zap.ByteString("stack", debug.Stack()),
				)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": usecase.MsgInternal})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
