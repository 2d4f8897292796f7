package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// compressString сжимает строку с помощью gzip
func compressString(t *testing.T, s string) []byte {
	t.Helper()

	var buf bytes.Buffer
	gzipWriter := gzip.NewWriter(&buf)
	_, err := gzipWriter.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, gzipWriter.Close())
	return buf.Bytes()
}

func TestGzip_CompressResponse(t *testing.T) {
	tests := []struct {
		name           string
		contentType    string
		status         int
		acceptEncoding string
		shouldCompress bool
	}{
		{name: "JSON response", contentType: "application/json", status: http.StatusOK, acceptEncoding: "gzip", shouldCompress: true},
		{name: "JSON with charset", contentType: "application/json; charset=utf-8", status: http.StatusOK, acceptEncoding: "gzip, deflate", shouldCompress: true},
		{name: "JSON error response", contentType: "application/json", status: http.StatusNotFound, acceptEncoding: "gzip", shouldCompress: true},
		{name: "Client without gzip", contentType: "application/json", status: http.StatusOK, acceptEncoding: "", shouldCompress: false},
		{name: "Plain text", contentType: "text/plain", status: http.StatusOK, acceptEncoding: "gzip", shouldCompress: false},
		{name: "Redirect", contentType: "", status: http.StatusMovedPermanently, acceptEncoding: "gzip", shouldCompress: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := `{"success":true,"data":{"shortCode":"abc"}}`
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.contentType != "" {
					w.Header().Set("Content-Type", tt.contentType)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(body))
			})

			req := httptest.NewRequest(http.MethodGet, "/api/links", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rec := httptest.NewRecorder()

			Gzip(zaptest.NewLogger(t))(handler).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if !tt.shouldCompress {
				assert.Empty(t, rec.Header().Get("Content-Encoding"))
				assert.Equal(t, body, rec.Body.String())
				return
			}

			assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
			reader, err := gzip.NewReader(rec.Body)
			require.NoError(t, err)
			decoded, err := io.ReadAll(reader)
			require.NoError(t, err)
			assert.Equal(t, body, string(decoded))
		})
	}
}

func TestGzip_DecompressRequest(t *testing.T) {
	payload := `{"shortCode":"abc","originalUrl":"https://example.com"}`

	var received string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		received = string(data)
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/links", bytes.NewReader(compressString(t, payload)))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	Gzip(zaptest.NewLogger(t))(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, payload, received)
}

func TestGzip_InvalidRequestBody(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodPost, "/api/links", strings.NewReader("invalid gzip data"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	Gzip(zap.New(core))(handler).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, rec.Body.String())
	assert.Equal(t, 1, logs.FilterMessage("failed to decompress request body").Len())
}

func TestIsJSON(t *testing.T) {
	assert.True(t, isJSON("application/json"))
	assert.True(t, isJSON("Application/JSON; charset=utf-8"))
	assert.False(t, isJSON("text/html"))
	assert.False(t, isJSON(""))
}
