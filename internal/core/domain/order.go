package domain

import "time"

// OrderStatus represents the lifecycle state of a supply order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusApproved  OrderStatus = "approved"
	StatusCompleted OrderStatus = "completed"
	StatusRejected  OrderStatus = "rejected"
)

// validTransitions defines the allowed state machine transitions.
// completed and rejected are terminal.
var validTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:  {StatusApproved, StatusRejected, StatusCompleted},
	StatusApproved: {StatusCompleted},
}

// ValidStatus reports whether s is one of the four enumerated statuses.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusApproved, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderItem is a single line of a supply order. Unit is filled for
// consumable orders (e.g. "paquet(s)"), Description for equipment orders.
type OrderItem struct {
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	Unit        string `json:"unit,omitempty"`
	Description string `json:"description,omitempty"`
}

// Order is a supply request submitted by an employee. Orders are created on
// submission and only ever mutated through a status transition; they are
// never deleted.
type Order struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Requester string      `json:"requester"`
	Date      time.Time   `json:"date"`
	Status    OrderStatus `json:"status"`
	Items     []OrderItem `json:"items"`
	Notes     string      `json:"notes,omitempty"`
}
