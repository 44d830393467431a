package validation

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// UsernamePattern определяет допустимый формат username
// Только латинские буквы (a-z, A-Z), цифры (0-9), нижнее подчеркивание (_) и точка
// Длина: 3-32 символа
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.]{3,32}$`)

const (
	// MinUsernameLen минимальная длина username
	MinUsernameLen = 3
	// MaxUsernameLen максимальная длина username
	MaxUsernameLen = 32
	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 12
	// MaxPasswordLen ограничение bcrypt (72 байта)
	MaxPasswordLen = 72
	// MaxRealNameLen максимальная длина настоящего имени
	MaxRealNameLen = 64
	// MaxEmailLen максимальная длина email (RFC 5321)
	MaxEmailLen = 254
)

// NormalizeEmail приводит email к каноническому виду для хранения и поиска
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail проверяет, что email является одиночным адресом без display name
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is missing")
	}

	if len(email) > MaxEmailLen {
		return fmt.Errorf("email must not exceed %d characters", MaxEmailLen)
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(addr.Address[strings.LastIndex(addr.Address, "@"):], ".") {
		return fmt.Errorf("email is not valid")
	}

	return nil
}

// ValidatePassword проверяет сложность пароля:
// минимум 12 символов, строчные и заглавные буквы, цифры и спецсимволы
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password is missing")
	}

	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must contain at least %d characters", MinPasswordLen)
	}

	if len(password) > MaxPasswordLen {
		return fmt.Errorf("password must not exceed %d bytes", MaxPasswordLen)
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			hasUpper = true
		case unicode.IsLower(ch):
			hasLower = true
		case unicode.IsDigit(ch):
			hasDigit = true
		case unicode.IsPunct(ch) || unicode.IsSymbol(ch):
			hasSpecial = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return fmt.Errorf("password must include small letters, capital letters, numbers and special characters")
	}

	return nil
}

// ValidateUsername проверяет, что username соответствует требованиям
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username is missing")
	}

	if len(username) < MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters long", MinUsernameLen)
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	}

	if !UsernamePattern.MatchString(username) {
		return fmt.Errorf("username can only contain letters (a-z, A-Z), numbers (0-9), dots and underscores (_)")
	}

	return nil
}

// ValidateRealName проверяет настоящее имя пользователя
func ValidateRealName(realName string) error {
	trimmed := strings.TrimSpace(realName)
	if trimmed == "" {
		return fmt.Errorf("real name is missing")
	}

	if len([]rune(trimmed)) > MaxRealNameLen {
		return fmt.Errorf("real name must not exceed %d characters", MaxRealNameLen)
	}

	for _, ch := range trimmed {
		if unicode.IsControl(ch) {
			return fmt.Errorf("real name contains invalid characters")
		}
	}

	return nil
}

// ValidateIdentity проверяет, что идентификатор пользователя является корректным UUID.
// Используется перед удалением сессий по идентификатору, извлеченному из непроверенного токена.
func ValidateIdentity(id string) error {
	if id == "" {
		return fmt.Errorf("identity is missing")
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("identity is not a valid UUID: %w", err)
	}

	// uuid.Parse принимает urn:uuid: и {} формы, храним только каноническую
	if parsed.String() != strings.ToLower(id) {
		return fmt.Errorf("identity is not in canonical form")
	}

	return nil
}
