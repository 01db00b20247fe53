package ports

import (
	"context"

	"github.com/christian-constantin/commandit/internal/core/domain"
)

// CreateUserInput carries the fields required to create an account.
type CreateUserInput struct {
	Email      string
	Name       string
	Department string
	Password   string
	Role       string // defaults to "user" when empty
	Active     *bool  // defaults to true when nil
}

// UpdateUserInput is a partial patch; nil fields are left untouched.
type UpdateUserInput struct {
	Email      *string
	Name       *string
	Department *string
	Role       *string
	Active     *bool
	Password   *string
}

// UserService defines the admin-facing user management use cases.
// Authorization (admin capability) is enforced by the transport layer
// before any of these are reached; the self-deletion guard lives here.
type UserService interface {
	List(ctx context.Context, filter UserFilter) ([]*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, patch UpdateUserInput) (*domain.User, error)
	// Delete removes the account with the given id. The caller identity is
	// required so that deleting one's own account can be rejected.
	Delete(ctx context.Context, id string, caller Identity) error
}
