package api

import "time"

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль в открытом виде (только по TLS)
	Username string `json:"username"` // отображаемое имя
	RealName string `json:"realName"` // настоящее имя
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль
}

// User представляет публичные данные пользователя (без хеша пароля)
type User struct {
	CreatedAt time.Time `json:"createdAt"` // время регистрации
	ID        string    `json:"id"`        // UUID пользователя
	Email     string    `json:"email"`     // email пользователя
	Username  string    `json:"username"`  // отображаемое имя
	RealName  string    `json:"realName"`  // настоящее имя
	Roles     []string  `json:"roles"`     // роли пользователя
}

// LoginResponse представляет ответ на успешный вход.
// Refresh token передается только в HttpOnly cookie.
type LoginResponse struct {
	User        User   `json:"user"`        // данные пользователя
	AccessToken string `json:"accessToken"` // JWT access token
}

// RefreshResponse представляет ответ на успешное обновление токенов
type RefreshResponse struct {
	User           User   `json:"user"`           // данные пользователя
	NewAccessToken string `json:"newAccessToken"` // новый JWT access token
}

// UserResponse представляет ответ с данными текущего пользователя
type UserResponse struct {
	User User `json:"user"`
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
