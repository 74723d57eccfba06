// Package session reads and writes the signed session cookie. The token
// inside is a JWT minted by the auth service; this package only handles
// the cookie transport.
package session

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const cookieName = "hospital_session"

// Write stores the session token in an HttpOnly cookie.
func Write(c echo.Context, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the session cookie. Clearing an absent cookie is fine,
// which is what makes logout idempotent.
func Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Token returns the raw session token, or "" when no session cookie is set.
func Token(c echo.Context) string {
	cookie, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
