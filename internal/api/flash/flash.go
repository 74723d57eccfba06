// Package flash carries one-shot notices across a POST-redirect-GET hop
// using a short-lived cookie. Set writes the notice, Pop reads and clears
// it on the next render.
package flash

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

const cookieName = "hospital_flash"

// Levels mirror the stylesheet classes the templates use.
const (
	LevelSuccess = "success"
	LevelDanger  = "danger"
)

type Notice struct {
	Level   string
	Message string
}

// Set queues a notice for the next rendered page.
func Set(c echo.Context, level, message string) {
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    url.QueryEscape(level + "|" + message),
		Path:     "/",
		HttpOnly: true,
	})
}

// Pop returns the pending notice, if any, and clears it.
func Pop(c echo.Context) *Notice {
	cookie, err := c.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}
	level, message, found := strings.Cut(raw, "|")
	if !found {
		return &Notice{Level: LevelSuccess, Message: raw}
	}
	return &Notice{Level: level, Message: message}
}
