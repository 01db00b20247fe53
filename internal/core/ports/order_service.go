package ports

import (
	"context"

	"github.com/christian-constantin/commandit/internal/core/domain"
)

// OrderItemInput is a single requested article.
type OrderItemInput struct {
	Name        string
	Quantity    int
	Unit        string
	Description string
}

// SubmitOrderInput carries all data needed to submit a supply order.
type SubmitOrderInput struct {
	Type      string
	Items     []OrderItemInput
	Notes     string
	Requester string
}

// SubmitOrderResult is returned after a successful submission. Dispatch is
// synchronous: when this is returned the notification mail has been handed
// to the transport.
type SubmitOrderResult struct {
	OrderID string
	Message string
}

// OrderService defines the order submission and administration use cases.
type OrderService interface {
	// Submit validates the order, persists it as pending, renders the
	// notification document, and dispatches it to the operations mailbox.
	// There is no deduplication: an identical resubmission creates a second
	// order and a second dispatch.
	Submit(ctx context.Context, input SubmitOrderInput) (*SubmitOrderResult, error)

	List(ctx context.Context) ([]*domain.Order, error)

	// UpdateStatus applies a status transition after checking it against
	// the state machine. Terminal orders reject every transition.
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}
