package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/christian-constantin/commandit/internal/core/domain"
)

// OrderRepository holds supply orders in memory. Orders are never deleted.
type OrderRepository struct {
	mu     sync.RWMutex
	orders []*domain.Order
}

// NewOrderRepository creates an OrderRepository pre-populated with seed.
func NewOrderRepository(seed []*domain.Order) *OrderRepository {
	orders := make([]*domain.Order, len(seed))
	for i, o := range seed {
		orders[i] = cloneOrder(o)
	}
	return &OrderRepository{orders: orders}
}

func (r *OrderRepository) Create(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, cloneOrder(order))
	return nil
}

func (r *OrderRepository) FindByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			return cloneOrder(o), nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

// List returns all orders, newest first.
func (r *OrderRepository) List(_ context.Context) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Order, len(r.orders))
	for i, o := range r.orders {
		out[i] = cloneOrder(o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *OrderRepository) SetStatus(_ context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range r.orders {
		if o.ID == id {
			o.Status = status
			return cloneOrder(o), nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func cloneOrder(o *domain.Order) *domain.Order {
	clone := *o
	clone.Items = make([]domain.OrderItem, len(o.Items))
	copy(clone.Items, o.Items)
	return &clone
}
