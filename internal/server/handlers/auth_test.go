package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/coffeeshop/internal/models"
	"github.com/iudanet/coffeeshop/internal/server/storage/memory"
	"github.com/iudanet/coffeeshop/pkg/api"
)

var testJWT = JWTConfig{Secret: []byte("test-secret-key"), AccessTokenTTL: 15 * time.Minute}

func newAuthHandler(t *testing.T) (*AuthHandler, *models.User) {
	t.Helper()
	store := memory.New()
	admin := &models.User{Email: "admin@coffee.shop", Username: "admin", Password: "secret", Role: models.RoleAdmin}
	require.NoError(t, store.CreateUser(context.Background(), admin))
	return NewAuthHandler(setupTestLogger(), store, testJWT), admin
}

func TestAuthHandler_Login(t *testing.T) {
	h, admin := newAuthHandler(t)

	w := serve(t, http.HandlerFunc(h.Login), http.MethodPost, "/auth/login", `{"email":"admin@coffee.shop","password":"secret"}`)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[api.LoginResponse](t, w)
	assert.Equal(t, "admin", resp.Username)
	assert.Equal(t, models.RoleAdmin, resp.Role)

	claims, err := ValidateAccessToken(testJWT, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestAuthHandler_LoginFailures(t *testing.T) {
	h, _ := newAuthHandler(t)

	tests := []struct {
		name string
		body string
		code int
	}{
		{"malformed body", "{", http.StatusBadRequest},
		{"invalid email", `{"email":"nope","password":"x"}`, http.StatusBadRequest},
		{"empty password", `{"email":"admin@coffee.shop","password":""}`, http.StatusBadRequest},
		{"unknown email", `{"email":"who@coffee.shop","password":"secret"}`, http.StatusUnauthorized},
		{"wrong password", `{"email":"admin@coffee.shop","password":"guess"}`, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, http.HandlerFunc(h.Login), http.MethodPost, "/auth/login", tt.body)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h, admin := newAuthHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req = req.WithContext(context.WithValue(req.Context(), UserIDKey, admin.ID))
	w := httptest.NewRecorder()
	h.Me(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[api.MeResponse](t, w)
	assert.Equal(t, "admin@coffee.shop", resp.Email)

	w = serve(t, http.HandlerFunc(h.Me), http.MethodGet, "/auth/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req = req.WithContext(context.WithValue(req.Context(), UserIDKey, "404"))
	w = httptest.NewRecorder()
	h.Me(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestValidateAccessToken_Rejects(t *testing.T) {
	token, err := GenerateAccessToken(testJWT, &models.User{ID: "1", Username: "u", Role: models.RoleUser})
	require.NoError(t, err)

	_, err = ValidateAccessToken(JWTConfig{Secret: []byte("other")}, token)
	require.Error(t, err)

	expired, err := GenerateAccessToken(JWTConfig{Secret: testJWT.Secret, AccessTokenTTL: time.Nanosecond}, &models.User{ID: "1"})
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	_, err = ValidateAccessToken(testJWT, expired)
	require.Error(t, err)
}
