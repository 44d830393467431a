package auth

import "errors"

var (
	// ErrValidation входные данные не прошли валидацию (400)
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials неизвестный email или неверный пароль (401).
	// Намеренно не различает эти два случая.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthorized refresh token не принят (401)
	ErrUnauthorized = errors.New("unauthorized")

	// ErrReuseDetected предъявлен уже использованный refresh token.
	// Всегда возвращается вместе с ErrUnauthorized.
	ErrReuseDetected = errors.New("refresh token reuse detected")

	// ErrEmailTaken пользователь с таким email уже существует (409)
	ErrEmailTaken = errors.New("email already exists")
)

// ValidationError описывает конкретную ошибку валидации.
// errors.Is(err, ErrValidation) возвращает true.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is позволяет сравнивать с ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(err error) error {
	return &ValidationError{Message: err.Error()}
}
