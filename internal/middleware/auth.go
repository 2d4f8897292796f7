package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

//go:generate mockery --name IdentityResolver

// IdentityResolver проверяет токен и возвращает идентификатор пользователя
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, token string) (string, error)
}

// UserIDKey is the key used to store user ID in context
type UserIDKey string

const (
	// UserIDContextKey is the context key for user ID
	UserIDContextKey UserIDKey = "user_id"

	// AuthCookieName cookie с токеном для браузерных клиентов
	AuthCookieName = "user_token"

	bearerPrefix = "Bearer "
)

// AuthMiddleware представляет миддлвар для аутентификации пользователей
type AuthMiddleware struct {
	resolver IdentityResolver
	logger   *zap.Logger
}

// NewAuthMiddleware создает новый экземпляр AuthMiddleware
func NewAuthMiddleware(resolver IdentityResolver, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		resolver: resolver,
		logger:   logger,
	}
}

// RequireAuth пропускает запрос дальше только с действительным токеном.
// Токен берется из заголовка Authorization, затем из cookie user_token.
func (am *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := TokenFromRequest(r)
		if token == "" {
			writeUnauthorized(w)
			return
		}

		userID, err := am.resolver.ResolveIdentity(r.Context(), token)
		if err != nil || userID == "" {
			am.logger.Debug("failed to authenticate user",
				zap.String("uri", r.RequestURI),
				zap.Error(err),
			)
			writeUnauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// TokenFromRequest извлекает токен из запроса; пустая строка означает отсутствие токена
func TokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		if len(header) > len(bearerPrefix) && strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			return strings.TrimSpace(header[len(bearerPrefix):])
		}
		return ""
	}

	if cookie, err := r.Cookie(AuthCookieName); err == nil {
		return cookie.Value
	}

	return ""
}

// WithUserID кладет идентификатор пользователя в контекст
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDContextKey, userID)
}

// GetUserIDFromContext извлекает user_id из контекста запроса
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDContextKey).(string)
	return userID, ok && userID != ""
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}
