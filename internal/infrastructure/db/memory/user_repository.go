// Package memory implements the repositories on process-local collections.
// It is the default backing store: data lives for the lifetime of the
// process and resets on restart. Every collection is guarded by a single
// RWMutex, and all reads return copies so callers can never mutate the
// store through a returned pointer.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/christian-constantin/commandit/internal/core/domain"
	"github.com/christian-constantin/commandit/internal/core/ports"
)

// UserRepository holds user accounts in memory.
type UserRepository struct {
	mu    sync.RWMutex
	users []*domain.User
}

// NewUserRepository creates a UserRepository pre-populated with seed.
func NewUserRepository(seed []*domain.User) *UserRepository {
	users := make([]*domain.User, len(seed))
	for i, u := range seed {
		users[i] = cloneUser(u)
	}
	return &UserRepository{users: users}
}

func (r *UserRepository) List(_ context.Context, filter ports.UserFilter) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		if filter.Department != "" && u.Department != filter.Department {
			continue
		}
		if filter.Active != nil && u.Active != *filter.Active {
			continue
		}
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return nil, domain.ErrUserExists
		}
	}
	r.users = append(r.users, cloneUser(user))
	return cloneUser(user), nil
}

func (r *UserRepository) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.users {
		if u.ID == user.ID {
			r.users[i] = cloneUser(user)
			return cloneUser(user), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	if u.LastLogin != nil {
		t := *u.LastLogin
		clone.LastLogin = &t
	}
	return &clone
}
