// Package config загружает настройки сервера.
//
// Порядок применения (каждый следующий источник перекрывает предыдущий):
// значения по умолчанию, файл .env, переменные окружения, флаги командной строки.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Окружения запуска
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Секреты по умолчанию пригодны только для локальной разработки
const (
	devAccessSecret      = "dev-access-secret-change-me"
	devRefreshSecret     = "dev-refresh-secret-change-me"
	devFingerprintSecret = "dev-fingerprint-secret-change-me"
)

// minProductionSecretLen минимальная длина секрета в production
const minProductionSecretLen = 32

// Config настройки сервера
type Config struct {
	Address            string        // адрес HTTP сервера
	DatabaseDSN        string        // путь к файлу SQLite или postgres:// DSN
	Environment        string        // development | production
	AccessTokenSecret  string        // секрет подписи access token
	RefreshTokenSecret string        // секрет подписи refresh token
	FingerprintSecret  string        // секрет HMAC отпечатков refresh token
	LogLevel           string        // debug | info | warn | error
	EnvFile            string        // путь к .env файлу
	AccessTokenTTL     time.Duration // время жизни access token
	RefreshTokenTTL    time.Duration // время жизни refresh token и cookie
	ReapInterval       time.Duration // период удаления устаревших записей токенов
	RateLimitWindow    time.Duration // окно rate limit для login/register
	ShutdownTimeout    time.Duration // время на graceful shutdown
	BcryptCost         int           // стоимость bcrypt
	RateLimit          int           // запросов на IP за окно
	ShowVersion        bool          // вывести версию и выйти
}

// Default возвращает конфигурацию для локальной разработки
func Default() *Config {
	return &Config{
		Address:            "localhost:8080",
		DatabaseDSN:        "socialnet.db",
		Environment:        EnvDevelopment,
		AccessTokenSecret:  devAccessSecret,
		RefreshTokenSecret: devRefreshSecret,
		FingerprintSecret:  devFingerprintSecret,
		LogLevel:           "info",
		EnvFile:            ".env",
		AccessTokenTTL:     5 * time.Minute,
		RefreshTokenTTL:    24 * time.Hour,
		ReapInterval:       time.Hour,
		RateLimitWindow:    time.Minute,
		ShutdownTimeout:    10 * time.Second,
		BcryptCost:         bcrypt.DefaultCost,
		RateLimit:          10,
	}
}

// IsProduction сообщает, запущен ли сервер в production окружении
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// SlogLevel возвращает уровень логирования для slog
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	var errs []error

	if c.Address == "" {
		errs = append(errs, errors.New("address is required"))
	}
	if c.DatabaseDSN == "" {
		errs = append(errs, errors.New("database DSN is required"))
	}
	if c.Environment != EnvDevelopment && c.Environment != EnvProduction {
		errs = append(errs, fmt.Errorf("unknown environment %q", c.Environment))
	}

	secrets := map[string]string{
		"access token secret":  c.AccessTokenSecret,
		"refresh token secret": c.RefreshTokenSecret,
		"fingerprint secret":   c.FingerprintSecret,
	}
	for name, secret := range secrets {
		if secret == "" {
			errs = append(errs, fmt.Errorf("%s is required", name))
			continue
		}
		if c.IsProduction() && len(secret) < minProductionSecretLen {
			errs = append(errs, fmt.Errorf("%s must be at least %d characters in production", name, minProductionSecretLen))
		}
	}
	if c.AccessTokenSecret != "" && c.AccessTokenSecret == c.RefreshTokenSecret {
		errs = append(errs, errors.New("access and refresh token secrets must differ"))
	}
	if c.IsProduction() && usesDevSecret(c) {
		errs = append(errs, errors.New("development secrets must not be used in production"))
	}

	if c.AccessTokenTTL <= 0 {
		errs = append(errs, errors.New("access token TTL must be positive"))
	}
	if c.RefreshTokenTTL <= c.AccessTokenTTL {
		errs = append(errs, errors.New("refresh token TTL must be longer than access token TTL"))
	}
	if c.ReapInterval <= 0 {
		errs = append(errs, errors.New("reap interval must be positive"))
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("bcrypt cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}
	if c.RateLimit <= 0 || c.RateLimitWindow <= 0 {
		errs = append(errs, errors.New("rate limit and its window must be positive"))
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		errs = append(errs, fmt.Errorf("invalid log level %q", c.LogLevel))
	}

	return errors.Join(errs...)
}

func usesDevSecret(c *Config) bool {
	return c.AccessTokenSecret == devAccessSecret ||
		c.RefreshTokenSecret == devRefreshSecret ||
		c.FingerprintSecret == devFingerprintSecret
}

// String возвращает настройки без секретов (для логов)
func (c *Config) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "address=%s environment=%s database=%s ", c.Address, c.Environment, redactDSN(c.DatabaseDSN))
	fmt.Fprintf(&b, "access_ttl=%s refresh_ttl=%s reap_interval=%s ", c.AccessTokenTTL, c.RefreshTokenTTL, c.ReapInterval)
	fmt.Fprintf(&b, "bcrypt_cost=%d rate_limit=%d/%s log_level=%s", c.BcryptCost, c.RateLimit, c.RateLimitWindow, c.LogLevel)
	return b.String()
}

// redactDSN скрывает пароль в postgres DSN
func redactDSN(dsn string) string {
	scheme, rest, found := strings.Cut(dsn, "://")
	if !found {
		return dsn
	}
	userinfo, host, found := strings.Cut(rest, "@")
	if !found {
		return dsn
	}
	user, _, hasPassword := strings.Cut(userinfo, ":")
	if !hasPassword {
		return dsn
	}
	return scheme + "://" + user + ":***@" + host
}
