package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/christian-constantin/commandit/internal/api/metrics"
	"github.com/christian-constantin/commandit/internal/core/domain"
	"github.com/christian-constantin/commandit/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    *domain.User `json:"user"`
}

// Login authenticates an employee and returns a signed bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "email and password are required"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			// Rendered by the central error handler: 401, no hint about
			// which of the two fields was wrong.
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return err
		case errors.Is(err, domain.ErrForbidden):
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "email is not authorized"})
		case errors.Is(err, domain.ErrTooManyAttempts):
			metrics.LoginsTotal.WithLabelValues("blocked").Inc()
			return c.JSON(http.StatusTooManyRequests, errorResponse{Error: "too many login attempts, try again later"})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Success: true, Token: token, User: user})
}
