package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"success", http.StatusOK, "level=INFO"},
		{"client error", http.StatusNotFound, "level=WARN"},
		{"server error", http.StatusInternalServerError, "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := bufferLogger()
			handler := LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("body"))
			}))

			req := httptest.NewRequest(http.MethodGet, "/products?search=chai", nil)
			req.Header.Set("Authorization", "Bearer secret-token")
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			out := buf.String()
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, out, tt.wantLevel)
			assert.Contains(t, out, "path=/products")
			assert.Contains(t, out, `query="search=chai"`)
			assert.Contains(t, out, "bytes_written=4")
			assert.NotContains(t, out, "secret-token")
		})
	}
}

func TestLoggingMiddleware_DefaultStatus(t *testing.T) {
	logger, buf := bufferLogger()
	handler := LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/products", nil))
	assert.Contains(t, buf.String(), "status=200")
}

func TestLoggingMiddleware_SkipPaths(t *testing.T) {
	logger, buf := bufferLogger()
	called := false
	handler := LoggingMiddleware(logger, "/health")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.True(t, called)
	assert.Empty(t, buf.String())
}
