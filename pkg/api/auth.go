package api

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse представляет ответ с bearer токеном
type LoginResponse struct {
	Token    string `json:"token"`    // JWT access token
	Username string `json:"username"` // имя пользователя
	Role     string `json:"role"`     // "admin" | "user"
}

// MeResponse ответ GET /auth/me
type MeResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`   // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
