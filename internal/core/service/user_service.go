package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/christian-constantin/commandit/internal/core/domain"
	"github.com/christian-constantin/commandit/internal/core/ports"
)

// UserService implements the admin-facing user management use cases.
type UserService struct {
	repo        ports.UserRepository
	emailDomain string
	log         zerolog.Logger
}

func NewUserService(repo ports.UserRepository, emailDomain string, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, emailDomain: emailDomain, log: log}
}

func (s *UserService) List(ctx context.Context, filter ports.UserFilter) ([]*domain.User, error) {
	return s.repo.List(ctx, filter)
}

// Create provisions a new account. The password is hashed and never appears
// in returned records.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Email == "" || input.Name == "" || input.Department == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: email, name, department and password are required", domain.ErrValidation)
	}
	if !domain.EmailInDomain(input.Email, s.emailDomain) {
		return nil, fmt.Errorf("%w: email must end with %s", domain.ErrValidation, s.emailDomain)
	}
	if !domain.ValidDepartment(input.Department) {
		return nil, fmt.Errorf("%w: unknown department %q", domain.ErrValidation, input.Department)
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if role != domain.RoleUser && role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		Name:         input.Name,
		Department:   input.Department,
		Role:         role,
		Active:       active,
		PasswordHash: string(hash),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user created")
	return created, nil
}

// Update applies a partial patch. A supplied email must still satisfy the
// organisation domain rule; a supplied password is rehashed.
func (s *UserService) Update(ctx context.Context, id string, patch ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil {
		if !domain.EmailInDomain(*patch.Email, s.emailDomain) {
			return nil, fmt.Errorf("%w: email must end with %s", domain.ErrValidation, s.emailDomain)
		}
		user.Email = *patch.Email
	}
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Department != nil {
		if !domain.ValidDepartment(*patch.Department) {
			return nil, fmt.Errorf("%w: unknown department %q", domain.ErrValidation, *patch.Department)
		}
		user.Department = *patch.Department
	}
	if patch.Role != nil {
		if *patch.Role != domain.RoleUser && *patch.Role != domain.RoleAdmin {
			return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, *patch.Role)
		}
		user.Role = *patch.Role
	}
	if patch.Active != nil {
		user.Active = *patch.Active
	}
	if patch.Password != nil && *patch.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", id).Msg("user updated")
	return updated, nil
}

// Delete removes an account. The caller's own account is protected: the
// deletion is rejected, never silently skipped.
func (s *UserService) Delete(ctx context.Context, id string, caller ports.Identity) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if strings.EqualFold(user.Email, caller.Email) {
		return fmt.Errorf("%w: you cannot delete your own account", domain.ErrInvalidOperation)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("user_id", id).Str("email", user.Email).Str("deleted_by", caller.Email).Msg("user deleted")
	return nil
}
