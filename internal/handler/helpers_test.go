package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avc-dev/link-shortener/internal/middleware"
	"github.com/avc-dev/link-shortener/internal/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func ptr[T any](v T) *T {
	return &v
}

func newTestHandler(t *testing.T) (*Handler, *mocks.MockLinkUsecase) {
	t.Helper()

	mockUsecase := mocks.NewMockLinkUsecase(t)
	return New(mockUsecase, zap.NewNop(), nil, "http://localhost:8080/"), mockUsecase
}

// newRequest создает запрос с параметрами маршрута chi и, если userID не пуст, с пользователем в контексте
func newRequest(method, target, body, userID string, params map[string]string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)

	routeCtx := chi.NewRouteContext()
	for key, value := range params {
		routeCtx.URLParams.Add(key, value)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx)
	if userID != "" {
		ctx = middleware.WithUserID(ctx, userID)
	}

	return req.WithContext(ctx)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
