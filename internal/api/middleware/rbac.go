package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/christian-constantin/commandit/internal/core/domain"
)

// AdminOnly rejects every request whose identity does not carry the admin
// role. It must run after Auth; an absent role means the gate never ran and
// is treated as forbidden.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role != domain.RoleAdmin {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "access forbidden"})
			}
			return next(c)
		}
	}
}
