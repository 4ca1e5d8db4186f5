package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/coffeeshop/internal/client/storage"
	"github.com/iudanet/coffeeshop/internal/validation"
	"github.com/iudanet/coffeeshop/pkg/api"
)

// LoginAPI is the part of the HTTP client used for authentication
type LoginAPI interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error)
}

// Session состояние сохраненного bearer токена
type Session struct {
	ExpiresAt time.Time
	Email     string
	Username  string
	Role      string
	Expired   bool
}

type service struct {
	api    LoginAPI
	store  storage.AuthStorage
	logger *slog.Logger
	now    func() time.Time
}

// NewService создает новый сервис авторизации
func NewService(api LoginAPI, store storage.AuthStorage, logger *slog.Logger) Service {
	return &service{
		api:    api,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Login выполняет аутентификацию и сохраняет токен локально
func (s *service) Login(ctx context.Context, email, password string) (*Session, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.api.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("login failed: server returned no token")
	}

	expiresAt, err := tokenExpiry(resp.Token)
	if err != nil {
		// Токен непрозрачен для клиента, срок просто неизвестен
		s.logger.Debug("Failed to read token expiry", "error", err)
	}

	data := &storage.AuthData{
		Token:     resp.Token,
		Email:     email,
		Username:  resp.Username,
		Role:      resp.Role,
		ExpiresAt: expiresAt,
	}
	if err := s.store.SaveAuth(ctx, data); err != nil {
		return nil, fmt.Errorf("failed to save auth data: %w", err)
	}

	s.logger.Info("Logged in", "email", email, "role", resp.Role)
	return s.session(data), nil
}

// Logout удаляет локальный токен; сервер сессий не хранит
func (s *service) Logout(ctx context.Context) error {
	if err := s.store.DeleteAuth(ctx); err != nil {
		return fmt.Errorf("failed to delete local auth data: %w", err)
	}
	return nil
}

func (s *service) Session(ctx context.Context) (*Session, error) {
	data, err := s.store.GetAuth(ctx)
	if errors.Is(err, storage.ErrAuthNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get auth data: %w", err)
	}
	return s.session(data), nil
}

func (s *service) session(data *storage.AuthData) *Session {
	return &Session{
		ExpiresAt: data.ExpiresAt,
		Email:     data.Email,
		Username:  data.Username,
		Role:      data.Role,
		Expired:   isExpired(data.ExpiresAt, s.now()),
	}
}

// tokenExpiry читает exp без проверки подписи: секрет знает только сервер
func tokenExpiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("failed to parse token: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid exp claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, nil
	}
	return exp.Time, nil
}
