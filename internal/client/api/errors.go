package api

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError - ответ сервера с кодом вне диапазона 2xx.
type StatusError struct {
	Code       string // поле error из тела ответа
	Message    string // поле message из тела ответа
	StatusCode int
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
	}
	if e.Code != "" {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Code)
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// HasStatus сообщает, содержит ли цепочка err StatusError с данным кодом.
func HasStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}

// IsUnauthenticated сообщает, что сервер не признал сессию клиента:
// 401 (нет токена или refresh token отклонен) или 403 после неудачного обновления.
func IsUnauthenticated(err error) bool {
	return HasStatus(err, http.StatusUnauthorized) || HasStatus(err, http.StatusForbidden)
}
