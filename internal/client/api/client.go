package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/iudanet/socialnet/internal/client/gate"
	"github.com/iudanet/socialnet/internal/client/session"
	"github.com/iudanet/socialnet/pkg/api"
)

const (
	defaultTimeout = 30 * time.Second

	// RefreshCookieName - имя cookie с refresh token
	RefreshCookieName = "refreshToken"
	refreshCookiePath = "/api/auth"
)

// Client представляет HTTP клиент для взаимодействия с сервером.
//
// Запросы аутентификации (register, login, logout, refresh) идут напрямую,
// запросы к защищенным ресурсам проходят через Gatekeeper.
type Client struct {
	jar        http.CookieJar
	httpClient *http.Client // без Gatekeeper
	authClient *http.Client // через Gatekeeper
	gatekeeper *Gatekeeper
	logger     *slog.Logger
	base       *url.URL
	baseURL    string
}

// Option настраивает Client.
type Option func(*options)

type options struct {
	jar       http.CookieJar
	transport http.RoundTripper
	gate      *gate.Gate
	timeout   time.Duration
}

// WithJar задает cookie jar (по умолчанию - jar в памяти).
func WithJar(jar http.CookieJar) Option {
	return func(o *options) { o.jar = jar }
}

// WithTransport задает базовый транспорт для всех запросов.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.transport = rt }
}

// WithGate задает общий барьер обновления токена.
func WithGate(g *gate.Gate) Option {
	return func(o *options) { o.gate = g }
}

// WithTimeout задает таймаут HTTP запросов, в том числе запроса обновления.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// NewClient создает новый API клиент
func NewClient(baseURL string, state session.State, logger *slog.Logger, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server address %q: %w", baseURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid server address %q: scheme must be http or https", baseURL)
	}

	o := options{timeout: defaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}
	if o.jar == nil {
		// cookiejar.New с nil options не возвращает ошибку
		o.jar, _ = cookiejar.New(nil)
	}
	if o.transport == nil {
		o.transport = http.DefaultTransport
	}
	if o.gate == nil {
		o.gate = gate.New()
	}

	c := &Client{
		jar:     o.jar,
		logger:  logger,
		base:    base,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   o.timeout,
			Jar:       o.jar,
			Transport: o.transport,
		},
	}

	c.gatekeeper = NewGatekeeper(o.transport, o.gate, state, c, logger)
	c.gatekeeper.OnSessionExpired(func(ctx context.Context) {
		if err := c.Logout(ctx); err != nil {
			logger.WarnContext(ctx, "Logout after failed refresh failed", slog.Any("error", err))
		}
	})
	c.authClient = &http.Client{
		Timeout:   o.timeout,
		Jar:       o.jar,
		Transport: c.gatekeeper,
	}

	return c, nil
}

// BaseURL возвращает адрес сервера
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HasRefreshCookie сообщает, хранит ли клиент refresh cookie для сервера.
func (c *Client) HasRefreshCookie() bool {
	for _, ck := range c.jar.Cookies(c.refreshCookieURL()) {
		if ck.Name == RefreshCookieName {
			return true
		}
	}
	return false
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) error {
	if err := c.doRequest(ctx, c.httpClient, http.MethodPost, "/api/auth/register", req, nil); err != nil {
		return fmt.Errorf("register request failed: %w", err)
	}
	return nil
}

// Login выполняет аутентификацию пользователя.
// Refresh token сохраняется в cookie jar.
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error) {
	var resp api.LoginResponse
	if err := c.doRequest(ctx, c.httpClient, http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Logout завершает сессию на сервере.
// Если сервер недоступен, refresh cookie все равно удаляется локально.
func (c *Client) Logout(ctx context.Context) error {
	err := c.doRequest(ctx, c.httpClient, http.MethodPost, "/api/auth/logout", nil, nil)
	if err != nil {
		c.ForgetRefreshCookie()
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// Refresh обменивает refresh cookie на новую пару токенов.
// Implements Refresher.
func (c *Client) Refresh(ctx context.Context) (session.Session, error) {
	var resp api.RefreshResponse
	if err := c.doRequest(ctx, c.httpClient, http.MethodGet, "/api/auth/refresh", nil, &resp); err != nil {
		return session.Session{}, fmt.Errorf("refresh request failed: %w", err)
	}
	if resp.NewAccessToken == "" {
		return session.Session{}, fmt.Errorf("refresh response did not contain an access token")
	}
	return session.Session{User: resp.User, AccessToken: resp.NewAccessToken}, nil
}

// Me возвращает данные текущего пользователя
func (c *Client) Me(ctx context.Context) (*api.User, error) {
	var resp api.UserResponse
	if err := c.doRequest(ctx, c.authClient, http.MethodGet, "/api/users/me", nil, &resp); err != nil {
		return nil, fmt.Errorf("get current user failed: %w", err)
	}
	return &resp.User, nil
}

// LogoutAll завершает все сессии пользователя на всех устройствах
func (c *Client) LogoutAll(ctx context.Context) error {
	if err := c.doRequest(ctx, c.authClient, http.MethodPost, "/api/auth/logout-all", nil, nil); err != nil {
		return fmt.Errorf("logout all request failed: %w", err)
	}
	return nil
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	var resp api.HealthResponse
	if err := c.doRequest(ctx, c.httpClient, http.MethodGet, "/api/health", nil, &resp); err != nil {
		return nil, fmt.Errorf("health request failed: %w", err)
	}
	return &resp, nil
}

// ForgetRefreshCookie удаляет refresh cookie только на стороне клиента.
func (c *Client) ForgetRefreshCookie() {
	c.jar.SetCookies(c.refreshCookieURL(), []*http.Cookie{{
		Name:   RefreshCookieName,
		Path:   refreshCookiePath,
		MaxAge: -1,
	}})
}

// refreshCookieURL возвращает URL с путем refresh cookie от корня хоста.
// JoinPath для адреса без пути дает относительный "api/auth", который jar
// сопоставляет с "/".
func (c *Client) refreshCookieURL() *url.URL {
	return c.base.ResolveReference(&url.URL{Path: refreshCookiePath})
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, hc *http.Client, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		// bytes.Reader дает запросу GetBody, нужный для повтора после обновления токена
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			statusErr.Code = errResp.Error
			statusErr.Message = errResp.Message
		}
		return statusErr
	}

	// Декодируем успешный ответ
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
