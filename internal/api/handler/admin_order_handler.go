package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/christian-constantin/commandit/internal/api/metrics"
	"github.com/christian-constantin/commandit/internal/core/domain"
	"github.com/christian-constantin/commandit/internal/core/ports"
)

// AdminOrderHandler exposes order administration to admins.
type AdminOrderHandler struct {
	service ports.OrderService
}

func NewAdminOrderHandler(service ports.OrderService) *AdminOrderHandler {
	return &AdminOrderHandler{service: service}
}

// List handles GET /admin/orders.
//
// @Summary      List all orders
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   orderResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/orders [get]
func (h *AdminOrderHandler) List(c echo.Context) error {
	orders, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderListResponse(orders))
}

// UpdateStatus handles PUT /admin/orders/:id/status.
//
// @Summary      Update an order's status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Order id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  orderResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /admin/orders/{id}/status [put]
func (h *AdminOrderHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), domain.OrderStatus(req.Status))
	if err != nil {
		return err
	}

	metrics.StatusTransitionsTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, toOrderResponse(order))
}
