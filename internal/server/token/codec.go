// Package token выпускает и проверяет access и refresh токены (JWT, HS256)
// и вычисляет отпечатки refresh токенов для хранения на сервере.
package token

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// Issuer значение claim iss во всех токенах
	Issuer = "socialnet"

	// DefaultAccessTTL время жизни access токена по умолчанию
	DefaultAccessTTL = 5 * time.Minute
	// DefaultRefreshTTL время жизни refresh токена по умолчанию
	DefaultRefreshTTL = 24 * time.Hour
)

var (
	// ErrExpired токен подписан корректно, но срок его действия истек
	ErrExpired = errors.New("token expired")
	// ErrInvalid подпись, алгоритм или claims токена не прошли проверку
	ErrInvalid = errors.New("token invalid")
	// ErrMalformed токен невозможно разобрать даже без проверки подписи
	ErrMalformed = errors.New("token malformed")
)

// Claims представляет полезную нагрузку токенов.
// Roles заполняется только в access токене, ID (jti) только в refresh токене.
type Claims struct {
	UserID string   `json:"user_id"`
	Roles  []string `json:"user_roles,omitempty"`
	jwt.RegisteredClaims
}

// Config содержит секреты и времена жизни токенов
type Config struct {
	AccessSecret      []byte
	RefreshSecret     []byte
	FingerprintSecret []byte
	AccessTTL         time.Duration
	RefreshTTL        time.Duration
}

// Codec выпускает, проверяет и хеширует токены. Состояния не хранит.
type Codec struct {
	now func() time.Time
	cfg Config
}

// Option настраивает Codec
type Option func(*Codec)

// WithClock подменяет источник времени (для тестов)
func WithClock(now func() time.Time) Option {
	return func(c *Codec) {
		c.now = now
	}
}

// NewCodec создает Codec. Секреты обязательны, access и refresh секреты должны различаться.
func NewCodec(cfg Config, opts ...Option) (*Codec, error) {
	if len(cfg.AccessSecret) == 0 {
		return nil, fmt.Errorf("access secret is required")
	}
	if len(cfg.RefreshSecret) == 0 {
		return nil, fmt.Errorf("refresh secret is required")
	}
	if len(cfg.FingerprintSecret) == 0 {
		return nil, fmt.Errorf("fingerprint secret is required")
	}
	if bytes.Equal(cfg.AccessSecret, cfg.RefreshSecret) {
		return nil, fmt.Errorf("access and refresh secrets must differ")
	}

	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = DefaultAccessTTL
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = DefaultRefreshTTL
	}

	c := &Codec{
		cfg: cfg,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// AccessTTL возвращает время жизни access токена
func (c *Codec) AccessTTL() time.Duration {
	return c.cfg.AccessTTL
}

// RefreshTTL возвращает время жизни refresh токена
func (c *Codec) RefreshTTL() time.Duration {
	return c.cfg.RefreshTTL
}

// IssueAccessToken подписывает access токен {identity, roles, now+AccessTTL}
func (c *Codec) IssueAccessToken(userID string, roles []string) (string, error) {
	now := c.now()

	claims := Claims{
		UserID: userID,
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.cfg.AccessTTL)),
		},
	}

	return c.sign(claims, c.cfg.AccessSecret)
}

// IssueRefreshToken подписывает refresh токен {identity, jti, now+RefreshTTL}.
// jti гарантирует разные отпечатки для токенов, выпущенных в одну секунду.
func (c *Codec) IssueRefreshToken(userID string) (string, error) {
	now := c.now()

	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			Issuer:    Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.cfg.RefreshTTL)),
		},
	}

	return c.sign(claims, c.cfg.RefreshSecret)
}

func (c *Codec) sign(claims Claims, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify проверяет подпись и срок действия токена.
// Возвращает ErrExpired для просроченного токена и ErrInvalid для всего остального.
func (c *Codec) Verify(raw string, secret []byte) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(Issuer),
	)

	claims := &Claims{}
	_, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %w", ErrExpired, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if claims.UserID == "" {
		return nil, fmt.Errorf("%w: missing user_id claim", ErrInvalid)
	}

	return claims, nil
}

// VerifyAccess проверяет access токен
func (c *Codec) VerifyAccess(raw string) (*Claims, error) {
	return c.Verify(raw, c.cfg.AccessSecret)
}

// VerifyRefresh проверяет refresh токен
func (c *Codec) VerifyRefresh(raw string) (*Claims, error) {
	return c.Verify(raw, c.cfg.RefreshSecret)
}

// DecodeUnsafe разбирает токен БЕЗ проверки подписи и срока действия.
// Результат нельзя использовать для авторизации: только для выбора, чьи сессии завершить.
func (c *Codec) DecodeUnsafe(raw string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return claims, nil
}

// Fingerprint возвращает hex HMAC-SHA256 от сырого токена.
// На сервере хранится только отпечаток, сам refresh токен не сохраняется.
func (c *Codec) Fingerprint(raw string) string {
	mac := hmac.New(sha256.New, c.cfg.FingerprintSecret)
	mac.Write([]byte(raw))
	return hex.EncodeToString(mac.Sum(nil))
}
