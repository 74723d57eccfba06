package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/carewell/hospital-system/internal/api/session"
)

// Auth validates the session cookie and injects the authenticated identity
// into the request context. Requests without a valid session are sent to
// the login screen rather than answered with a bare 401: every protected
// route here renders for a browser.
func Auth(signingKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := session.Token(c)
			if token == "" {
				return c.Redirect(http.StatusFound, "/login")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
				if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(signingKey), nil
			})
			if err != nil || !tkn.Valid {
				session.Clear(c)
				return c.Redirect(http.StatusFound, "/login")
			}

			if uid, ok := claims["uid"].(float64); ok {
				c.Set("user_id", int(uid))
			}
			c.Set("username", claims["username"])
			c.Set("role", claims["role"])

			return next(c)
		}
	}
}
