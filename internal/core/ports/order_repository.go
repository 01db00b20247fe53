package ports

import (
	"context"

	"github.com/christian-constantin/commandit/internal/core/domain"
)

// OrderRepository defines persistence operations for supply orders.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	// SetStatus persists a new status on an existing order. Transition
	// legality is the service's responsibility.
	SetStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}
