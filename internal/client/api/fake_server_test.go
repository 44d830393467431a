package api

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/iudanet/socialnet/pkg/api"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

var testUser = api.User{
	ID:       "6f1c3a8e-2b7d-4c1e-9a55-0d2f8e4b7c11",
	Email:    "ann@example.com",
	Username: "ann",
	RealName: "Ann Lee",
	Roles:    []string{"user"},
}

// fakeAuthServer повторяет контракт сервера: 401 без токена,
// 403 на неверный токен, ротация refresh cookie.
type fakeAuthServer struct {
	*httptest.Server

	mu            sync.Mutex
	accessToken   string
	refreshToken  string
	generation    int
	bodies        []string
	refreshDelay  time.Duration
	failRefresh   atomic.Bool
	alwaysForbid  atomic.Bool
	refreshCalls  atomic.Int32
	protectedHits atomic.Int32
	logoutCalls   atomic.Int32
}

func newFakeAuthServer(t *testing.T) *fakeAuthServer {
	t.Helper()

	f := &fakeAuthServer{accessToken: "access-1", refreshToken: "refresh-1", generation: 1}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", f.login)
	mux.HandleFunc("GET /api/auth/refresh", f.refresh)
	mux.HandleFunc("POST /api/auth/logout", f.logout)
	mux.HandleFunc("GET /api/users/me", f.protected(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, api.UserResponse{User: testUser})
	}))
	mux.HandleFunc("POST /api/auth/logout-all", f.protected(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	mux.HandleFunc("POST /api/echo", f.protected(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Close)
	return f
}

func (f *fakeAuthServer) currentAccess() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.accessToken
}

func (f *fakeAuthServer) setRefreshDelay(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshDelay = d
}

func (f *fakeAuthServer) setCookie(w http.ResponseWriter, value string) {
	c := &http.Cookie{
		Name:     RefreshCookieName,
		Value:    value,
		Path:     "/api/auth",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   86400,
	}
	if value == "" {
		c.MaxAge = -1
	}
	http.SetCookie(w, c)
}

func (f *fakeAuthServer) login(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	access, refresh := f.accessToken, f.refreshToken
	f.mu.Unlock()

	f.setCookie(w, refresh)
	writeJSON(w, http.StatusOK, api.LoginResponse{User: testUser, AccessToken: access})
}

func (f *fakeAuthServer) refresh(w http.ResponseWriter, r *http.Request) {
	f.refreshCalls.Add(1)

	f.mu.Lock()
	delay := f.refreshDelay
	f.mu.Unlock()
	time.Sleep(delay)

	f.mu.Lock()
	defer f.mu.Unlock()

	c, err := r.Cookie(RefreshCookieName)
	if err != nil || f.failRefresh.Load() || c.Value != f.refreshToken {
		f.setCookie(w, "")
		writeJSON(w, http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized", Message: "invalid refresh token"})
		return
	}

	f.generation++
	f.accessToken = fmt.Sprintf("access-%d", f.generation)
	f.refreshToken = fmt.Sprintf("refresh-%d", f.generation)

	f.setCookie(w, f.refreshToken)
	writeJSON(w, http.StatusOK, api.RefreshResponse{User: testUser, NewAccessToken: f.accessToken})
}

func (f *fakeAuthServer) logout(w http.ResponseWriter, r *http.Request) {
	f.logoutCalls.Add(1)
	f.setCookie(w, "")
	w.WriteHeader(http.StatusNoContent)
}

func (f *fakeAuthServer) protected(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.protectedHits.Add(1)

		body, _ := io.ReadAll(r.Body)
		if len(body) > 0 {
			f.mu.Lock()
			f.bodies = append(f.bodies, string(body))
			f.mu.Unlock()
		}

		header := r.Header.Get("Authorization")
		if header == "" {
			writeJSON(w, http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized", Message: "missing token"})
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")
		if f.alwaysForbid.Load() || token != f.currentAccess() {
			writeJSON(w, http.StatusForbidden, api.ErrorResponse{Error: "Forbidden", Message: "invalid or expired token"})
			return
		}
		next(w, r)
	}
}

func (f *fakeAuthServer) recordedBodies() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.bodies...)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
