package models

import "time"

// Роли пользователя, попадающие в claims access token
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User представляет пользователя социальной сети
type User struct {
	CreatedAt    time.Time `json:"created_at"` // время регистрации
	ID           string    `json:"id"`         // UUID пользователя
	Email        string    `json:"email"`      // уникальный email (в нижнем регистре)
	PasswordHash string    `json:"-"`          // bcrypt хеш пароля, наружу не отдается
	Username     string    `json:"username"`   // отображаемое имя
	RealName     string    `json:"real_name"`  // настоящее имя
	Roles        []string  `json:"roles"`      // роли для авторизации
}

// HasRole reports whether the user carries the given role label.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// TokenRecord связывает fingerprint refresh token с владельцем.
// Сырой refresh token никогда не сохраняется.
type TokenRecord struct {
	CreatedAt   time.Time `json:"created_at"`  // время выдачи токена
	Fingerprint string    `json:"fingerprint"` // HMAC-SHA256 от сырого токена (hex)
	UserID      string    `json:"user_id"`     // ID владельца
}
