package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch возвращается, когда пароль не соответствует хешу
var ErrPasswordMismatch = errors.New("password does not match hash")

// BcryptHasher хеширует и сравнивает пароли через bcrypt.
// Хеш непрозрачен для вызывающего кода: соль и cost хранятся внутри строки.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher создает hasher с указанной стоимостью.
// Если cost вне допустимого диапазона, используется bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Cost возвращает используемую стоимость хеширования
func (h *BcryptHasher) Cost() int {
	return h.cost
}

// Hash возвращает bcrypt хеш пароля
func (h *BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashed), nil
}

// Compare проверяет пароль против сохраненного хеша.
// Возвращает ErrPasswordMismatch, если пароль неверный.
func (h *BcryptHasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return nil
	}

	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}

	return fmt.Errorf("failed to compare password: %w", err)
}
