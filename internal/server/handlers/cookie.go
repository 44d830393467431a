package handlers

import (
	"net/http"
	"time"
)

// RefreshCookieName имя cookie с refresh token
const RefreshCookieName = "refreshToken"

// CookieConfig параметры cookie с refresh token
type CookieConfig struct {
	Path   string        // путь, на который браузер отправляет cookie
	MaxAge time.Duration // время жизни, обычно равно RefreshTTL
	Secure bool          // только HTTPS (включается в production)
}

// setRefreshCookie устанавливает cookie с новым refresh token
func (c CookieConfig) setRefreshCookie(w http.ResponseWriter, refreshToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookieName,
		Value:    refreshToken,
		Path:     c.Path,
		MaxAge:   int(c.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// clearRefreshCookie удаляет cookie на клиенте
func (c CookieConfig) clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookieName,
		Value:    "",
		Path:     c.Path,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// readRefreshCookie возвращает refresh token из cookie или пустую строку
func readRefreshCookie(r *http.Request) string {
	cookie, err := r.Cookie(RefreshCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
