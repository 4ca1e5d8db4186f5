package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/coffeeshop/pkg/api"
)

func TestRecoveryMiddleware(t *testing.T) {
	logger, buf := bufferLogger()
	handler := RecoveryMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("espresso machine exploded")
	}))

	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	w := httptest.NewRecorder()
	assert.NotPanics(t, func() { handler.ServeHTTP(w, req) })

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "internal server error", resp.Message)
	assert.NotContains(t, w.Body.String(), "exploded")

	assert.Contains(t, buf.String(), "Panic recovered")
	assert.Contains(t, buf.String(), "espresso machine exploded")
	assert.Contains(t, buf.String(), "stack=")
}

func TestRecoveryMiddleware_NoPanic(t *testing.T) {
	handler := RecoveryMiddleware(setupTestLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/products", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
}
