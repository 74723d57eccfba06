package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

func signedToken(t *testing.T, key string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func requestWithSession(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "hospital_session", Value: token})
	}
	return req
}

func TestAuth_NoCookieRedirectsToLogin(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(requestWithSession(""), rec)

	handler := Auth("secret")(func(c echo.Context) error {
		t.Fatalf("next handler must not run")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestAuth_ValidSessionInjectsClaims(t *testing.T) {
	e := echo.New()
	token := signedToken(t, "secret", jwt.MapClaims{
		"uid":      float64(7),
		"username": "admin",
		"role":     "admin",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	rec := httptest.NewRecorder()
	c := e.NewContext(requestWithSession(token), rec)

	var called bool
	handler := Auth("secret")(func(c echo.Context) error {
		called = true
		if got, _ := c.Get("user_id").(int); got != 7 {
			t.Fatalf("expected user_id 7, got %v", c.Get("user_id"))
		}
		if c.Get("username") != "admin" || c.Get("role") != "admin" {
			t.Fatalf("claims not injected: %v / %v", c.Get("username"), c.Get("role"))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestAuth_BadSignatureRedirects(t *testing.T) {
	e := echo.New()
	token := signedToken(t, "other-key", jwt.MapClaims{
		"username": "admin", "role": "admin", "exp": time.Now().Add(time.Hour).Unix(),
	})
	rec := httptest.NewRecorder()
	c := e.NewContext(requestWithSession(token), rec)

	handler := Auth("secret")(func(c echo.Context) error {
		t.Fatalf("next handler must not run")
		return nil
	})

	_ = handler(c)
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
}

func TestAuth_ExpiredSessionRedirects(t *testing.T) {
	e := echo.New()
	token := signedToken(t, "secret", jwt.MapClaims{
		"username": "admin", "role": "admin", "exp": time.Now().Add(-time.Minute).Unix(),
	})
	rec := httptest.NewRecorder()
	c := e.NewContext(requestWithSession(token), rec)

	handler := Auth("secret")(func(c echo.Context) error {
		t.Fatalf("next handler must not run")
		return nil
	})

	_ = handler(c)
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
}
