package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/christian-constantin/commandit/internal/core/domain"
	"github.com/christian-constantin/commandit/internal/core/ports"
)

// SettingsHandler exposes system settings administration.
type SettingsHandler struct {
	service ports.SettingsService
}

func NewSettingsHandler(service ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

type updateSettingsResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message"`
	Settings *domain.Settings `json:"settings"`
}

type testEmailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Get handles GET /admin/settings. The mail password is masked.
//
// @Summary      Read system settings
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Settings
// @Failure      403  {object}  errorResponse
// @Router       /admin/settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.service.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

// Update handles PUT /admin/settings.
//
// @Summary      Update system settings
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.Settings  true  "New settings"
// @Success      200   {object}  updateSettingsResponse
// @Failure      400   {object}  errorResponse
// @Router       /admin/settings [put]
func (h *SettingsHandler) Update(c echo.Context) error {
	var req domain.Settings
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	settings, err := h.service.Update(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updateSettingsResponse{
		Success:  true,
		Message:  "settings updated",
		Settings: settings,
	})
}

// TestEmail handles POST /admin/test-email — sends a test message to the
// calling admin's own address.
//
// @Summary      Test the mail configuration
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  testEmailResponse
// @Failure      502  {object}  errorResponse
// @Router       /admin/test-email [post]
func (h *SettingsHandler) TestEmail(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.SendTestEmail(c.Request().Context(), caller.Email); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, testEmailResponse{
		Success: true,
		Message: "test email sent to " + caller.Email,
	})
}
