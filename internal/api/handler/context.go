package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/christian-constantin/commandit/internal/core/ports"
)

// ctxIdentity extracts the identity injected by the Auth middleware. An
// empty email means the middleware never ran; reject before any service
// call rather than trusting a half-populated context.
func ctxIdentity(c echo.Context) (ports.Identity, error) {
	email, _ := c.Get("email").(string)
	if email == "" {
		return ports.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	name, _ := c.Get("name").(string)
	role, _ := c.Get("role").(string)
	return ports.Identity{Email: email, Name: name, Role: role}, nil
}
