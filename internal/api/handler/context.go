package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/carewell/hospital-system/internal/api/flash"
	"github.com/carewell/hospital-system/internal/core/domain"
)

// pageContext carries the per-request fields every view shares: the
// pending flash notice and the identity injected by the auth middleware.
type pageContext struct {
	Flash    *flash.Notice
	Username string
	Role     string
	IsAdmin  bool
}

func newPageContext(c echo.Context) pageContext {
	username, _ := c.Get("username").(string)
	role, _ := c.Get("role").(string)
	return pageContext{
		Flash:    flash.Pop(c),
		Username: username,
		Role:     role,
		IsAdmin:  role == domain.RoleAdmin,
	}
}

// idParam parses the :id path segment.
func idParam(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}
