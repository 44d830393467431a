// Package auth управляет сессией клиента: вход, выход, восстановление
// сессии при запуске и запросы к защищенным ресурсам.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/socialnet/internal/client/api"
	"github.com/iudanet/socialnet/internal/client/session"
	"github.com/iudanet/socialnet/internal/validation"
	pkgapi "github.com/iudanet/socialnet/pkg/api"
)

//go:generate moq -out api_mock.go . API

// API - методы сервера, которые использует сервис.
// Реализуется *api.Client.
type API interface {
	Register(ctx context.Context, req pkgapi.RegisterRequest) error
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.LoginResponse, error)
	Logout(ctx context.Context) error
	Refresh(ctx context.Context) (session.Session, error)
	Me(ctx context.Context) (*pkgapi.User, error)
	LogoutAll(ctx context.Context) error
	HasRefreshCookie() bool
	ForgetRefreshCookie()
}

// ErrNotLoggedIn возвращается, когда у клиента нет действующей сессии
var ErrNotLoggedIn = errors.New("not logged in")

// Service предоставляет функции авторизации
type Service struct {
	api    API
	state  session.State
	logger *slog.Logger
}

// NewService создает новый сервис авторизации
func NewService(apiClient API, state session.State, logger *slog.Logger) *Service {
	return &Service{
		api:    apiClient,
		state:  state,
		logger: logger,
	}
}

// Register регистрирует нового пользователя.
// Данные проверяются локально теми же правилами, что и на сервере.
func (s *Service) Register(ctx context.Context, req pkgapi.RegisterRequest) error {
	req.Email = validation.NormalizeEmail(req.Email)

	if err := validation.ValidateEmail(req.Email); err != nil {
		return fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}
	if err := validation.ValidateUsername(req.Username); err != nil {
		return fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidateRealName(req.RealName); err != nil {
		return fmt.Errorf("invalid real name: %w", err)
	}

	return s.api.Register(ctx, req)
}

// Login выполняет аутентификацию и сохраняет сессию
func (s *Service) Login(ctx context.Context, email, password string) (*session.Session, error) {
	email = validation.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	resp, err := s.api.Login(ctx, pkgapi.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	sess := session.Session{User: resp.User, AccessToken: resp.AccessToken}
	s.state.SetSession(sess)

	s.logger.DebugContext(ctx, "Logged in", slog.String("user_id", resp.User.ID))
	return &sess, nil
}

// Logout уведомляет сервер и всегда очищает локальную сессию.
// Ошибка сервера возвращается после очистки.
func (s *Service) Logout(ctx context.Context) error {
	err := s.api.Logout(ctx)
	s.state.Clear()

	if err != nil {
		s.logger.WarnContext(ctx, "Server logout failed, local session cleared", slog.Any("error", err))
		return err
	}
	return nil
}

// Restore восстанавливает сессию при запуске.
// Если access token есть, ничего не делает. Иначе выполняет тихое обновление
// по refresh cookie; при неудаче завершает сессию на сервере и очищает состояние.
// Возвращает true, если сессия активна.
func (s *Service) Restore(ctx context.Context) (bool, error) {
	if s.state.AccessToken() != "" {
		return true, nil
	}
	if !s.api.HasRefreshCookie() {
		return false, nil
	}

	sess, err := s.api.Refresh(ctx)
	if err == nil {
		s.state.SetSession(sess)
		return true, nil
	}

	s.logger.DebugContext(ctx, "Silent refresh failed", slog.Any("error", err))
	if lerr := s.api.Logout(ctx); lerr != nil {
		s.logger.WarnContext(ctx, "Logout after failed refresh failed", slog.Any("error", lerr))
	}
	s.state.Clear()

	if api.IsUnauthenticated(err) {
		return false, nil
	}
	return false, err
}

// Current возвращает текущую сессию
func (s *Service) Current() (session.Session, bool) {
	return s.state.Session()
}

// Me запрашивает данные текущего пользователя.
// Истекший access token обновляется прозрачно.
func (s *Service) Me(ctx context.Context) (*pkgapi.User, error) {
	if s.state.AccessToken() == "" {
		return nil, ErrNotLoggedIn
	}

	user, err := s.api.Me(ctx)
	if err != nil {
		if api.IsUnauthenticated(err) {
			return nil, fmt.Errorf("%w: %w", ErrNotLoggedIn, err)
		}
		return nil, err
	}
	return user, nil
}

// LogoutAll завершает сессии пользователя на всех устройствах.
// Refresh cookie этого клиента после этого недействительна и удаляется локально.
func (s *Service) LogoutAll(ctx context.Context) error {
	if s.state.AccessToken() == "" {
		return ErrNotLoggedIn
	}

	if err := s.api.LogoutAll(ctx); err != nil {
		if api.IsUnauthenticated(err) {
			return fmt.Errorf("%w: %w", ErrNotLoggedIn, err)
		}
		return err
	}

	s.api.ForgetRefreshCookie()
	s.state.Clear()
	return nil
}
