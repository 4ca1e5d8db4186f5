package models

import "time"

// Roles
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User представляет пользователя dev-сервера
type User struct {
	CreatedAt time.Time
	LastLogin *time.Time
	ID        string
	Username  string
	Email     string
	Password  string // открытым текстом: сервер только для разработки
	Role      string
}
