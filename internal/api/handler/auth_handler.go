package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/carewell/hospital-system/internal/api/flash"
	"github.com/carewell/hospital-system/internal/api/metrics"
	"github.com/carewell/hospital-system/internal/api/session"
	"github.com/carewell/hospital-system/internal/core/domain"
	"github.com/carewell/hospital-system/internal/core/ports"
)

// AuthHandler serves the login screen and manages the session cookie.
type AuthHandler struct {
	authService ports.AuthService
	sessionTTL  time.Duration
}

func NewAuthHandler(authService ports.AuthService, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, sessionTTL: sessionTTL}
}

type loginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type loginView struct {
	pageContext
}

func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", loginView{pageContext: newPageContext(c)})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return h.rejectLogin(c)
	}
	if err := c.Validate(&form); err != nil {
		return h.rejectLogin(c)
	}

	token, _, err := h.authService.Login(c.Request().Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return h.rejectLogin(c)
		}
		return err
	}

	session.Write(c, token, h.sessionTTL)
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.Redirect(http.StatusFound, "/")
}

// rejectLogin reports every failure mode identically so the form never
// reveals whether the username exists.
func (h *AuthHandler) rejectLogin(c echo.Context) error {
	metrics.LoginsTotal.WithLabelValues("failure").Inc()
	flash.Set(c, flash.LevelDanger, "Invalid username or password!")
	return c.Redirect(http.StatusFound, "/login")
}

// Logout clears the session cookie and always lands on the login screen,
// session or not.
func (h *AuthHandler) Logout(c echo.Context) error {
	session.Clear(c)
	return c.Redirect(http.StatusFound, "/login")
}
