package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/christian-constantin/commandit/internal/core/ports"
)

// Auth extracts the bearer token, verifies it through the auth service, and
// injects the resulting identity into the request context. It fails closed:
// a missing header, a non-Bearer scheme, and an invalid token are all
// answered with the same 401.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			identity, err := auth.Authorize(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("email", identity.Email)
			c.Set("name", identity.Name)
			c.Set("role", identity.Role)

			return next(c)
		}
	}
}
