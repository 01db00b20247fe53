package domain

import (
	"strings"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Departments is the enumerated set a user may belong to. It mirrors the
// organisation chart and is also exposed through the settings payload.
// Every admin-created or admin-edited account must name one of these;
// accounts auto-provisioned at first login start with an empty department
// until an admin assigns one.
var Departments = []string{
	"Direction",
	"Comptabilité",
	"RH",
	"IT",
	"Marketing",
	"Commercial",
	"Technique",
	"Administratif",
}

// ValidDepartment reports whether d is one of the enumerated departments.
func ValidDepartment(d string) bool {
	for _, dep := range Departments {
		if dep == d {
			return true
		}
	}
	return false
}

// User is an employee account managed through the admin panel.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Department   string     `json:"department"`
	Role         string     `json:"role"`
	Active       bool       `json:"active"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	PasswordHash string     `json:"-"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// EmailInDomain reports whether email ends with the organisation's email
// domain suffix (e.g. "@christian-constantin.ch"). The comparison is
// case-insensitive on the domain part.
func EmailInDomain(email, domainSuffix string) bool {
	if email == "" || domainSuffix == "" {
		return false
	}
	return strings.HasSuffix(strings.ToLower(email), strings.ToLower(domainSuffix))
}
