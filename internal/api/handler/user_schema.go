package handler

import (
	"time"

	"github.com/christian-constantin/commandit/internal/core/domain"
)

type createUserRequest struct {
	Email      string `json:"email"      validate:"required,email"`
	Name       string `json:"name"       validate:"required"`
	Department string `json:"department" validate:"required"`
	Password   string `json:"password"   validate:"required,min=8"`
	Role       string `json:"role,omitempty"   validate:"omitempty,oneof=user admin"`
	Active     *bool  `json:"active,omitempty"`
}

type updateUserRequest struct {
	Email      *string `json:"email,omitempty"      validate:"omitempty,email"`
	Name       *string `json:"name,omitempty"`
	Department *string `json:"department,omitempty"`
	Role       *string `json:"role,omitempty"       validate:"omitempty,oneof=user admin"`
	Active     *bool   `json:"active,omitempty"`
	Password   *string `json:"password,omitempty"   validate:"omitempty,min=8"`
}

// userResponse deliberately has no password field at all; the hash can
// never leak through this type.
type userResponse struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	Name       string     `json:"name"`
	Department string     `json:"department"`
	Role       string     `json:"role"`
	Active     bool       `json:"active"`
	LastLogin  *time.Time `json:"lastLogin,omitempty"`
}

type deleteUserResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Department: u.Department,
		Role:       u.Role,
		Active:     u.Active,
		LastLogin:  u.LastLogin,
	}
}

func toUserListResponse(users []*domain.User) []userResponse {
	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	return out
}
