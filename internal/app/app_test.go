package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/avc-dev/link-shortener/internal/config"
	"github.com/avc-dev/link-shortener/internal/handler"
	"github.com/avc-dev/link-shortener/internal/middleware"
	"github.com/avc-dev/link-shortener/internal/mocks"
	"github.com/avc-dev/link-shortener/internal/service"
	"github.com/avc-dev/link-shortener/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func TestApp_Close(t *testing.T) {
	t.Run("database pool exists", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		mockDB.EXPECT().Close().Once()

		app := &App{
			logger: zap.NewNop(),
			dbPool: mockDB,
		}

		// Act
		app.Close()
		// Повторный вызов не закрывает пул второй раз
		app.Close()

		// Assert
		mockDB.AssertExpectations(t)
	})

	t.Run("database pool is nil", func(t *testing.T) {
		app := &App{
			logger: zap.NewNop(),
			dbPool: nil,
		}

		// Act - should not panic
		app.Close()
	})

	t.Run("closers are called and errors logged", func(t *testing.T) {
		calls := 0
		app := &App{
			logger: zap.NewNop(),
			closers: []func() error{
				func() error { calls++; return errors.New("close failed") },
				func() error { calls++; return nil },
			},
		}

		app.Close()

		assert.Equal(t, 2, calls)
		assert.Nil(t, app.closers)
	})
}

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.NewDefaultConfig()
	cfg.JWTSecret = testSecret
	cfg.BaseURL = config.URLPrefix("http://sho.rt")
	cfg.Clicks.Workers = 1
	return cfg
}

func newTestApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()

	app, err := New(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(app.Close)

	return app
}

func bearer(t *testing.T, userID string) string {
	t.Helper()

	token, err := service.NewAuthService(testSecret, time.Hour).GenerateJWT(userID)
	require.NoError(t, err)
	return "Bearer " + token
}

func do(t *testing.T, handler http.Handler, method, target, body, auth string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRouter_LinkFlow(t *testing.T) {
	app := newTestApp(t, newTestConfig(t))
	auth := bearer(t, "user-1")

	// Создание
	rec := do(t, app.router, http.MethodPost, "/api/links",
		`{"originalUrl":"https://example.com/page","shortCode":"promo","title":"Promo"}`, auth)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		Success bool `json:"success"`
		Data    struct {
			ID       int64  `json:"id"`
			ShortURL string `json:"shortUrl"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.True(t, created.Success)
	assert.Equal(t, "http://sho.rt/l/promo", created.Data.ShortURL)

	// Повторное создание того же кода
	rec = do(t, app.router, http.MethodPost, "/api/links",
		`{"originalUrl":"https://example.com/other","shortCode":"promo"}`, bearer(t, "user-2"))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"This short code is already taken"}`, rec.Body.String())

	// Переход по обоим адресам
	for _, path := range []string{"/promo", "/l/promo"} {
		rec = do(t, app.router, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		assert.Equal(t, "https://example.com/page", rec.Header().Get("Location"))
	}

	// Список владельца
	rec = do(t, app.router, http.MethodGet, "/api/links?sort=clicks-high", "", auth)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"shortCode":"promo"`)

	// Чужой пользователь не видит и не удаляет ссылку
	rec = do(t, app.router, http.MethodGet, "/api/links", "", bearer(t, "user-2"))
	assert.JSONEq(t, `{"success":true,"data":[]}`, rec.Body.String())

	rec = do(t, app.router, http.MethodDelete, "/api/links/1", "", bearer(t, "user-2"))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Деактивация
	rec = do(t, app.router, http.MethodPatch, "/api/links/1", `{"isActive":false}`, auth)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, app.router, http.MethodGet, "/promo", "", "")
	assert.Equal(t, http.StatusGone, rec.Code)

	// Удаление
	rec = do(t, app.router, http.MethodDelete, "/api/links/1", "", auth)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	rec = do(t, app.router, http.MethodGet, "/promo", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_RequiresAuth(t *testing.T) {
	app := newTestApp(t, newTestConfig(t))

	tests := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/links"},
		{http.MethodPost, "/api/links"},
		{http.MethodGet, "/api/links/suggest"},
		{http.MethodPatch, "/api/links/1"},
		{http.MethodDelete, "/api/links/1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := do(t, app.router, tt.method, tt.target, "", "Bearer invalid")

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
		})
	}
}

func TestRouter_PingAndSuggest(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.FileStoragePath = filepath.Join(t.TempDir(), "links.json")
	app := newTestApp(t, cfg)

	rec := do(t, app.router, http.MethodGet, "/api/ping", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = do(t, app.router, http.MethodGet, "/api/links/suggest", "", bearer(t, "user-1"))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			ShortCode string `json:"shortCode"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data.ShortCode, service.CodeLength)
}

func TestNew_SQLiteStorage(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.SQLitePath = filepath.Join(t.TempDir(), "links.db")

	app := newTestApp(t, cfg)
	require.Len(t, app.closers, 1)

	rec := do(t, app.router, http.MethodPost, "/api/links",
		`{"originalUrl":"https://example.com","shortCode":"lite"}`, bearer(t, "user-1"))
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestRouter_RedirectPanicReturnsInternalError(t *testing.T) {
	linkUsecase := mocks.NewMockLinkUsecase(t)
	linkUsecase.EXPECT().ResolveLink(mock.Anything, "promo").
		RunAndReturn(func(context.Context, string) (string, error) {
			panic("unexpected nil link")
		}).Once()

	reporter, err := telemetry.NewReporter(telemetry.SentryConfig{}, zap.NewNop())
	require.NoError(t, err)

	auth := middleware.NewAuthMiddleware(service.NewAuthService(testSecret, time.Hour), zap.NewNop())
	router := newRouter(handler.New(linkUsecase, zap.NewNop(), nil, "http://sho.rt"), auth, reporter, zap.NewNop())

	rec := do(t, router, http.MethodGet, "/promo", "", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}
