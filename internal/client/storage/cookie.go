package storage

import (
	"context"
	"net/http"
	"time"
)

// CookieStorage хранит cookie, выставленные сервером (refresh token).
type CookieStorage interface {
	// SaveCookie сохраняет cookie; ключ - (Host, Path, Name)
	SaveCookie(ctx context.Context, c *StoredCookie) error

	// DeleteCookie удаляет cookie. Отсутствие cookie не является ошибкой.
	DeleteCookie(ctx context.Context, host, path, name string) error

	// ListCookies возвращает все сохраненные cookie
	ListCookies(ctx context.Context) ([]StoredCookie, error)
}

// StoredCookie - cookie вместе с адресом, для которого она была выставлена.
type StoredCookie struct {
	Expires  time.Time     `json:"expires"`
	Name     string        `json:"name"`
	Value    string        `json:"value"`
	Domain   string        `json:"domain"` // атрибут Domain, пустой для host-only cookie
	Path     string        `json:"path"`
	Host     string        `json:"host"` // хост, выставивший cookie
	URL      string        `json:"url"`  // адрес ответа, выставившего cookie
	SameSite http.SameSite `json:"same_site"`
	Secure   bool          `json:"secure"`
	HttpOnly bool          `json:"http_only"`
}

// Key возвращает ключ cookie в хранилище.
func (c *StoredCookie) Key() string {
	return CookieKey(c.Host, c.Path, c.Name)
}

// CookieKey собирает ключ хранилища из хоста, пути и имени cookie.
func CookieKey(host, path, name string) string {
	return host + ";" + path + ";" + name
}

// Expired сообщает, истек ли срок cookie к моменту now.
// Cookie без срока (session cookie) не истекает.
func (c *StoredCookie) Expired(now time.Time) bool {
	return !c.Expires.IsZero() && !now.Before(c.Expires)
}

// HTTPCookie преобразует запись обратно в http.Cookie.
func (c *StoredCookie) HTTPCookie() *http.Cookie {
	return &http.Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Path:     c.Path,
		Domain:   c.Domain,
		Expires:  c.Expires,
		Secure:   c.Secure,
		HttpOnly: c.HttpOnly,
		SameSite: c.SameSite,
	}
}
