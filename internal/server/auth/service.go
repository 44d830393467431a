// Package auth реализует жизненный цикл сессий: регистрацию, вход, выход
// и ротацию refresh токенов с обнаружением их повторного использования.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/socialnet/internal/crypto"
	"github.com/iudanet/socialnet/internal/models"
	"github.com/iudanet/socialnet/internal/server/metrics"
	"github.com/iudanet/socialnet/internal/server/storage"
	"github.com/iudanet/socialnet/internal/server/token"
	"github.com/iudanet/socialnet/internal/validation"
)

// dummyPassword хешируется при старте, чтобы вход с неизвестным email
// занимал столько же времени, сколько с неверным паролем
const dummyPassword = "socialnet-dummy-password"

// PasswordHasher хеширует и сравнивает пароли
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare возвращает crypto.ErrPasswordMismatch, если пароль неверный
	Compare(hash, password string) error
}

// Session результат успешного входа или обновления токенов
type Session struct {
	User         *models.User
	AccessToken  string
	RefreshToken string
}

// RegisterInput данные для регистрации пользователя
type RegisterInput struct {
	Email    string
	Password string
	Username string
	RealName string
}

// Service управляет аутентификацией
type Service struct {
	logger    *slog.Logger
	users     storage.UserStorage
	tokens    *TokenStore
	codec     *token.Codec
	hasher    PasswordHasher
	metrics   *metrics.Metrics
	now       func() time.Time
	dummyHash string
}

// Option настраивает Service
type Option func(*Service)

// WithMetrics включает учет метрик
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithClock подменяет источник времени
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService создает сервис аутентификации
func NewService(
	logger *slog.Logger,
	users storage.UserStorage,
	tokens *TokenStore,
	codec *token.Codec,
	hasher PasswordHasher,
	opts ...Option,
) (*Service, error) {
	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare dummy hash: %w", err)
	}

	s := &Service{
		logger:    logger,
		users:     users,
		tokens:    tokens,
		codec:     codec,
		hasher:    hasher,
		now:       time.Now,
		dummyHash: dummyHash,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Register создает нового пользователя с ролью user
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	email := validation.NormalizeEmail(in.Email)
	realName := strings.TrimSpace(in.RealName)

	// 1. Валидация входных данных
	if err := validation.ValidateEmail(email); err != nil {
		return nil, newValidationError(err)
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, newValidationError(err)
	}
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, newValidationError(err)
	}
	if err := validation.ValidateRealName(realName); err != nil {
		return nil, newValidationError(err)
	}

	// 2. Проверяем, что email свободен
	_, err := s.users.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, ErrEmailTaken
	case !errors.Is(err, storage.ErrUserNotFound):
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	// 3. Хешируем пароль
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// 4. Сохраняем пользователя
	user := &models.User{
		CreatedAt:    s.now(),
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Username:     in.Username,
		RealName:     realName,
		Roles:        []string{models.RoleUser},
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		// конкурентная регистрация с тем же email
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.metrics.ObserveRegistration()
	s.logger.InfoContext(ctx, "User registered", slog.String("user_id", user.ID))

	return user, nil
}

// Login проверяет учетные данные и выпускает новую пару токенов.
// Если клиент прислал старый refresh token, он утилизируется до выпуска новой пары;
// результат утилизации на вход не влияет.
func (s *Service) Login(ctx context.Context, email, password, existingRefreshToken string) (*Session, error) {
	email = validation.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, &ValidationError{Message: "email and password are required"}
	}

	// 1. Ищем пользователя
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			// выравниваем время ответа с веткой неверного пароля
			_ = s.hasher.Compare(s.dummyHash, password)
			s.metrics.ObserveLogin(metrics.ResultInvalidCredentials)
			return nil, ErrInvalidCredentials
		}
		s.metrics.ObserveLogin(metrics.ResultError)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// 2. Проверяем пароль
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			s.metrics.ObserveLogin(metrics.ResultInvalidCredentials)
			return nil, ErrInvalidCredentials
		}
		s.metrics.ObserveLogin(metrics.ResultError)
		return nil, fmt.Errorf("failed to compare password: %w", err)
	}

	// 3. Утилизируем старый refresh token, если он есть
	if existingRefreshToken != "" {
		if err := s.dispose(ctx, existingRefreshToken); err != nil {
			s.logger.WarnContext(ctx, "Failed to dispose previous refresh token on login",
				slog.String("user_id", user.ID),
				slog.Any("error", err))
		}
	}

	// 4. Выпускаем новую пару
	session, err := s.issueSession(ctx, user)
	if err != nil {
		s.metrics.ObserveLogin(metrics.ResultError)
		return nil, err
	}

	s.metrics.ObserveLogin(metrics.ResultSuccess)
	s.logger.InfoContext(ctx, "User logged in", slog.String("user_id", user.ID))

	return session, nil
}

// Logout завершает сессию, привязанную к refresh token. Идемпотентен.
// Ошибки классификации не возвращаются, только сбои хранилища.
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	return s.dispose(ctx, refreshToken)
}

// Refresh обменивает действующий refresh token на новую пару токенов.
//
// Предъявленный токен попадает ровно в один из случаев:
//  1. запись есть, подпись верна, владелец совпадает: ротация;
//  2. записи нет, подпись верна: повторное использование, все сессии владельца завершаются;
//  3. записи нет, подпись не проверяется: сессии пользователя из непроверенных claims
//     завершаются, если его идентификатор корректен.
//
// Во всех случаях, кроме первого, возвращается ErrUnauthorized.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*Session, error) {
	if refreshToken == "" {
		s.metrics.ObserveRefresh(metrics.ResultUnauthorized)
		return nil, ErrUnauthorized
	}

	fingerprint := s.codec.Fingerprint(refreshToken)

	record, err := s.tokens.FindByFingerprint(ctx, fingerprint)
	if err != nil {
		s.metrics.ObserveRefresh(metrics.ResultError)
		return nil, err
	}

	// Случаи 2 и 3
	if record == nil {
		reused, err := s.teardown(ctx, refreshToken)
		if err != nil {
			s.metrics.ObserveRefresh(metrics.ResultError)
			return nil, err
		}
		s.metrics.ObserveRefresh(metrics.ResultUnauthorized)
		if reused {
			return nil, fmt.Errorf("%w: %w", ErrUnauthorized, ErrReuseDetected)
		}
		return nil, ErrUnauthorized
	}

	// Случай 1: запись одноразовая и удаляется до любых проверок
	claimed, err := s.tokens.DeleteByFingerprint(ctx, fingerprint)
	if err != nil {
		s.metrics.ObserveRefresh(metrics.ResultError)
		return nil, err
	}
	if !claimed {
		// запись забрал конкурентный запрос с тем же токеном
		s.metrics.ObserveRefresh(metrics.ResultUnauthorized)
		return nil, ErrUnauthorized
	}

	claims, err := s.codec.VerifyRefresh(refreshToken)
	if err != nil {
		s.logger.InfoContext(ctx, "Refresh token with record failed verification",
			slog.String("user_id", record.UserID),
			slog.Any("error", err))
		s.metrics.ObserveRefresh(metrics.ResultUnauthorized)
		return nil, ErrUnauthorized
	}

	if claims.UserID != record.UserID {
		s.logger.WarnContext(ctx, "Refresh token subject does not match record owner",
			slog.String("user_id", record.UserID))
		s.metrics.ObserveRefresh(metrics.ResultUnauthorized)
		return nil, ErrUnauthorized
	}

	user, err := s.users.GetUserByID(ctx, record.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			s.metrics.ObserveRefresh(metrics.ResultUnauthorized)
			return nil, ErrUnauthorized
		}
		s.metrics.ObserveRefresh(metrics.ResultError)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	session, err := s.issueSession(ctx, user)
	if err != nil {
		s.metrics.ObserveRefresh(metrics.ResultError)
		return nil, err
	}

	s.metrics.ObserveRefresh(metrics.ResultSuccess)

	return session, nil
}

// LogoutEverywhere завершает все сессии пользователя
func (s *Service) LogoutEverywhere(ctx context.Context, userID string) (int, error) {
	n, err := s.tokens.DeleteAllForIdentity(ctx, userID)
	if err != nil {
		return 0, err
	}

	s.logger.InfoContext(ctx, "User logged out from all devices",
		slog.String("user_id", userID),
		slog.Int("sessions", n))

	return n, nil
}

// CurrentUser возвращает пользователя по идентификатору из access token
func (s *Service) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// dispose удаляет запись токена, а при ее отсутствии выполняет teardown
func (s *Service) dispose(ctx context.Context, refreshToken string) error {
	deleted, err := s.tokens.DeleteByFingerprint(ctx, s.codec.Fingerprint(refreshToken))
	if err != nil {
		return err
	}
	if deleted {
		return nil
	}

	_, err = s.teardown(ctx, refreshToken)
	return err
}

// teardown обрабатывает токен без записи в хранилище.
// Возвращает true, если токен подписан нами, то есть использован повторно.
func (s *Service) teardown(ctx context.Context, refreshToken string) (bool, error) {
	claims, err := s.codec.VerifyRefresh(refreshToken)
	if err == nil {
		n, err := s.tokens.DeleteAllForIdentity(ctx, claims.UserID)
		if err != nil {
			return true, err
		}
		s.metrics.ObserveReuseDetected()
		s.logger.WarnContext(ctx, "Refresh token reuse detected, all sessions revoked",
			slog.String("user_id", claims.UserID),
			slog.Int("revoked", n))
		return true, nil
	}

	// Подпись не проверяется (скорее всего истек срок): claims только для выбора цели
	claims, err = s.codec.DecodeUnsafe(refreshToken)
	if err != nil {
		return false, nil
	}

	if err := validation.ValidateIdentity(claims.UserID); err != nil {
		return false, nil
	}

	n, err := s.tokens.DeleteAllForIdentity(ctx, claims.UserID)
	if err != nil {
		return false, err
	}
	if n > 0 {
		s.logger.WarnContext(ctx, "Unverifiable refresh token presented, sessions revoked",
			slog.String("user_id", claims.UserID),
			slog.Int("revoked", n))
	}

	return false, nil
}

// issueSession выпускает пару токенов и сохраняет отпечаток refresh token
func (s *Service) issueSession(ctx context.Context, user *models.User) (*Session, error) {
	accessToken, err := s.codec.IssueAccessToken(user.ID, user.Roles)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	refreshToken, err := s.codec.IssueRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	if err := s.tokens.Insert(ctx, s.codec.Fingerprint(refreshToken), user.ID); err != nil {
		return nil, err
	}

	return &Session{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
