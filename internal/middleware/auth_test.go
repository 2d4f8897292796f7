package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc-dev/link-shortener/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name           string
		prepare        func(r *http.Request)
		resolvedUser   string
		resolveErr     error
		expectResolve  string
		expectedStatus int
	}{
		{
			name:           "Bearer token",
			prepare:        func(r *http.Request) { r.Header.Set("Authorization", "Bearer good-token") },
			resolvedUser:   "user-1",
			expectResolve:  "good-token",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Lowercase bearer",
			prepare:        func(r *http.Request) { r.Header.Set("Authorization", "bearer good-token") },
			resolvedUser:   "user-1",
			expectResolve:  "good-token",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Cookie token",
			prepare:        func(r *http.Request) { r.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "cookie-token"}) },
			resolvedUser:   "user-2",
			expectResolve:  "cookie-token",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Rejected token",
			prepare:        func(r *http.Request) { r.Header.Set("Authorization", "Bearer bad-token") },
			resolveErr:     errors.New("invalid token"),
			expectResolve:  "bad-token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "No credentials",
			prepare:        func(r *http.Request) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Basic scheme",
			prepare:        func(r *http.Request) { r.Header.Set("Authorization", "Basic dXNlcjpwYXNz") },
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := mocks.NewMockIdentityResolver(t)
			if tt.expectResolve != "" {
				resolver.EXPECT().
					ResolveIdentity(mock.Anything, tt.expectResolve).
					Return(tt.resolvedUser, tt.resolveErr).
					Once()
			}

			var gotUser string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser, _ = GetUserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/links", nil)
			tt.prepare(req)
			rec := httptest.NewRecorder()

			NewAuthMiddleware(resolver, zap.NewNop()).RequireAuth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.resolvedUser, gotUser)
				return
			}
			assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
		})
	}
}
