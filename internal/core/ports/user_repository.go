package ports

import (
	"context"

	"github.com/christian-constantin/commandit/internal/core/domain"
)

// UserFilter narrows List results. Zero values mean "no filter".
type UserFilter struct {
	Department string
	Active     *bool
}

// UserRepository defines persistence operations for user accounts.
// The backing store is swappable: the default is the process-local seeded
// store, MongoDB is the durable alternative.
type UserRepository interface {
	List(ctx context.Context, filter UserFilter) ([]*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	// Delete removes the account immediately; there is no soft delete.
	Delete(ctx context.Context, id string) error
}
