package auth

import (
	"context"
)

//go:generate moq -out service_mock.go . Service

// Service defines the bearer-token session operations
type Service interface {
	// Login отправляет учетные данные и сохраняет полученный токен
	Login(ctx context.Context, email, password string) (*Session, error)

	// Logout удаляет локальный токен
	Logout(ctx context.Context) error

	// Session возвращает текущую сессию или nil, если вход не выполнен
	Session(ctx context.Context) (*Session, error)
}
