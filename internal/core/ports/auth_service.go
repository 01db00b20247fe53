package ports

import (
	"context"

	"github.com/christian-constantin/commandit/internal/core/domain"
)

// Identity is the verified result of the auth gate: who the token belongs
// to and what they may do. It carries no credential material.
type Identity struct {
	Email string
	Name  string
	Role  string
}

// IsAdmin reports whether the identity carries admin capability.
func (i Identity) IsAdmin() bool {
	return i.Role == domain.RoleAdmin
}

// AuthService issues and verifies bearer tokens.
type AuthService interface {
	// Login validates the credentials and returns a signed token plus the
	// authenticated user. The email must belong to the organisation domain.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)

	// Authorize verifies a raw bearer token (signature and expiry) and
	// returns the embedded identity. It fails closed: any malformed,
	// unsigned, or expired token yields domain.ErrUnauthorized.
	Authorize(token string) (*Identity, error)
}
