package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/iudanet/socialnet/internal/client/storage"
)

// PersistentJar - cookie jar, сохраняющий cookie сервера в хранилище,
// чтобы refresh token переживал перезапуск клиента.
type PersistentJar struct {
	jar     *cookiejar.Jar
	storage storage.CookieStorage
	logger  *slog.Logger
	now     func() time.Time
}

// NewPersistentJar создает jar и загружает в него сохраненные cookie.
// Истекшие cookie удаляются из хранилища.
func NewPersistentJar(ctx context.Context, st storage.CookieStorage, logger *slog.Logger) (*PersistentJar, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	j := &PersistentJar{
		jar:     jar,
		storage: st,
		logger:  logger,
		now:     time.Now,
	}

	stored, err := st.ListCookies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cookies: %w", err)
	}

	now := j.now()
	for _, c := range stored {
		if c.Expired(now) {
			if err := st.DeleteCookie(ctx, c.Host, c.Path, c.Name); err != nil {
				logger.WarnContext(ctx, "Failed to delete expired cookie",
					slog.String("name", c.Name),
					slog.Any("error", err),
				)
			}
			continue
		}

		u, err := url.Parse(c.URL)
		if err != nil {
			logger.WarnContext(ctx, "Skipping cookie with invalid origin",
				slog.String("name", c.Name),
				slog.Any("error", err),
			)
			continue
		}
		jar.SetCookies(u, []*http.Cookie{c.HTTPCookie()})
	}

	return j, nil
}

// Cookies implements http.CookieJar
func (j *PersistentJar) Cookies(u *url.URL) []*http.Cookie {
	return j.jar.Cookies(u)
}

// SetCookies implements http.CookieJar.
// Cookie с MaxAge < 0, пустым значением или истекшим сроком удаляются из хранилища.
func (j *PersistentJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.jar.SetCookies(u, cookies)

	ctx := context.Background()
	now := j.now()
	for _, c := range cookies {
		sc := j.stored(u, c, now)

		if c.MaxAge < 0 || c.Value == "" || sc.Expired(now) {
			if err := j.storage.DeleteCookie(ctx, sc.Host, sc.Path, sc.Name); err != nil {
				j.logger.Error("Failed to delete cookie", slog.String("name", c.Name), slog.Any("error", err))
			}
			continue
		}

		if err := j.storage.SaveCookie(ctx, sc); err != nil {
			j.logger.Error("Failed to persist cookie", slog.String("name", c.Name), slog.Any("error", err))
		}
	}
}

func (j *PersistentJar) stored(u *url.URL, c *http.Cookie, now time.Time) *storage.StoredCookie {
	expires := c.Expires
	if c.MaxAge > 0 {
		expires = now.Add(time.Duration(c.MaxAge) * time.Second)
	}

	return &storage.StoredCookie{
		Expires:  expires,
		Name:     c.Name,
		Value:    c.Value,
		Domain:   c.Domain,
		Path:     c.Path,
		Host:     u.Hostname(),
		URL:      u.String(),
		SameSite: c.SameSite,
		Secure:   c.Secure,
		HttpOnly: c.HttpOnly,
	}
}
