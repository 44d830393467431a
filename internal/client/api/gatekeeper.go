package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/socialnet/internal/client/gate"
	"github.com/iudanet/socialnet/internal/client/session"
)

// Refresher обменивает refresh cookie на новую сессию.
type Refresher interface {
	Refresh(ctx context.Context) (session.Session, error)
}

// Gatekeeper - http.RoundTripper, который подставляет access token в запросы
// и на ответ 403 обновляет токен ровно одним запросом на все конкурирующие вызовы.
//
// Пока идет обновление, барьер закрыт: новые запросы и запросы, ждущие повтора,
// ждут его открытия и затем уходят с новым токеном. Повторный запрос
// отправляется мимо Gatekeeper, поэтому второй 403 возвращается как есть.
type Gatekeeper struct {
	next      http.RoundTripper
	gate      *gate.Gate
	state     session.State
	refresher Refresher
	logger    *slog.Logger
	onExpired func(ctx context.Context)
}

// NewGatekeeper создает Gatekeeper поверх транспорта next (nil - http.DefaultTransport).
func NewGatekeeper(next http.RoundTripper, g *gate.Gate, state session.State, refresher Refresher, logger *slog.Logger) *Gatekeeper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &Gatekeeper{
		next:      next,
		gate:      g,
		state:     state,
		refresher: refresher,
		logger:    logger,
	}
}

// OnSessionExpired задает действие после неудачного обновления,
// когда сессия уже очищена (например, logout на сервере).
func (g *Gatekeeper) OnSessionExpired(fn func(ctx context.Context)) {
	g.onExpired = fn
}

// RoundTrip implements http.RoundTripper
func (g *Gatekeeper) RoundTrip(req *http.Request) (*http.Response, error) {
	g.gate.WaitUntilOpen()

	sent := bearerToken(req)
	out := req
	if sent == "" {
		sent = g.state.AccessToken()
		if sent != "" {
			out = withBearer(req, sent)
		}
	}

	resp, err := g.next.RoundTrip(out)
	if err != nil || resp.StatusCode != http.StatusForbidden {
		return resp, err
	}
	if !replayable(req) {
		return resp, nil
	}

	token, ok := g.renew(req.Context(), sent)
	if !ok {
		return resp, nil
	}

	retry, err := rewind(req)
	if err != nil {
		g.logger.WarnContext(req.Context(), "Failed to rewind request body", slog.Any("error", err))
		return resp, nil
	}
	discard(resp)

	return g.next.RoundTrip(withBearer(retry, token))
}

// renew возвращает токен для повтора запроса, отправленного с токеном sent.
// Обновление выполняет только тот, кто закрыл барьер.
func (g *Gatekeeper) renew(ctx context.Context, sent string) (string, bool) {
	var (
		token string
		ok    bool
	)

	claimed := g.gate.CloseThenEventuallyOpen(func() {
		if cur := g.state.AccessToken(); cur != sent {
			// Сессию уже обновили или очистили после отправки запроса
			token, ok = cur, cur != ""
			return
		}

		// результата ждут все остальные запросы, отмена исходного его не прерывает
		s, err := g.refresher.Refresh(context.WithoutCancel(ctx))
		if err != nil {
			g.logger.WarnContext(ctx, "Token refresh failed, clearing session", slog.Any("error", err))
			g.state.Clear()
			if g.onExpired != nil {
				g.onExpired(context.WithoutCancel(ctx))
			}
			return
		}

		g.state.SetSession(s)
		token, ok = s.AccessToken, s.AccessToken != ""
		g.logger.DebugContext(ctx, "Access token refreshed")
	})
	if claimed {
		return token, ok
	}

	g.gate.WaitUntilOpen()
	token = g.state.AccessToken()
	return token, token != ""
}

func bearerToken(req *http.Request) string {
	scheme, token, found := strings.Cut(req.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return token
}

// withBearer возвращает копию запроса с заголовком Authorization.
// RoundTripper не должен изменять исходный запрос.
func withBearer(req *http.Request, token string) *http.Request {
	out := req.Clone(req.Context())
	out.Header.Set("Authorization", "Bearer "+token)
	return out
}

func replayable(req *http.Request) bool {
	return req.Body == nil || req.Body == http.NoBody || req.GetBody != nil
}

func rewind(req *http.Request) (*http.Request, error) {
	out := req.Clone(req.Context())
	if req.GetBody == nil {
		return out, nil
	}
	body, err := req.GetBody()
	if err != nil {
		return nil, err
	}
	out.Body = body
	return out, nil
}

// discard дочитывает и закрывает тело, чтобы соединение вернулось в пул
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	_ = resp.Body.Close()
}
