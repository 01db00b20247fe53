package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/christian-constantin/commandit/internal/api/metrics"
	"github.com/christian-constantin/commandit/internal/core/domain"
	"github.com/christian-constantin/commandit/internal/core/ports"
)

// OrderHandler handles order submission by authenticated employees.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Submit handles POST /orders.
//
// @Summary      Submit a supply order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitOrderRequest  true  "Order details"
// @Success      200   {object}  submitOrderResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /orders [post]
func (h *OrderHandler) Submit(c echo.Context) error {
	var req submitOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items := make([]ports.OrderItemInput, len(req.Items))
	for i, it := range req.Items {
		items[i] = ports.OrderItemInput{
			Name:        it.Name,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			Description: it.Description,
		}
	}

	result, err := h.service.Submit(c.Request().Context(), ports.SubmitOrderInput{
		Type:      req.Type,
		Items:     items,
		Notes:     req.Notes,
		Requester: req.Requester,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDispatchFailed) {
			metrics.DispatchErrorsTotal.Inc()
		}
		return err
	}

	metrics.OrdersSubmittedTotal.WithLabelValues(req.Type).Inc()
	return c.JSON(http.StatusOK, submitOrderResponse{
		Success: true,
		Message: result.Message,
		OrderID: result.OrderID,
	})
}
