package handler

import (
	"time"

	"github.com/christian-constantin/commandit/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type orderItemRequest struct {
	Name        string `json:"name"        validate:"required"`
	Quantity    int    `json:"quantity"    validate:"gte=0"`
	Unit        string `json:"unit,omitempty"`
	Description string `json:"description,omitempty"`
}

type submitOrderRequest struct {
	Type      string             `json:"type"      validate:"required"`
	Items     []orderItemRequest `json:"items"     validate:"required,min=1,dive"`
	Notes     string             `json:"notes,omitempty"`
	Requester string             `json:"requester" validate:"required,email"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved completed rejected"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal service changes.

type submitOrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}

type orderItemResponse struct {
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	Unit        string `json:"unit,omitempty"`
	Description string `json:"description,omitempty"`
}

type orderResponse struct {
	ID        string              `json:"id"`
	Type      string              `json:"type"`
	Requester string              `json:"requester"`
	Date      time.Time           `json:"date"`
	Status    string              `json:"status"`
	Items     []orderItemResponse `json:"items"`
	Notes     string              `json:"notes,omitempty"`
}

func toOrderResponse(o *domain.Order) orderResponse {
	items := make([]orderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = orderItemResponse(it)
	}
	return orderResponse{
		ID:        o.ID,
		Type:      o.Type,
		Requester: o.Requester,
		Date:      o.Date.UTC(),
		Status:    string(o.Status),
		Items:     items,
		Notes:     o.Notes,
	}
}

func toOrderListResponse(orders []*domain.Order) []orderResponse {
	out := make([]orderResponse, len(orders))
	for i, o := range orders {
		out[i] = toOrderResponse(o)
	}
	return out
}
