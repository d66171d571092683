package access

import (
	"strings"

	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
)

type Role string

const (
	RoleClient  Role = "client"
	RoleCompany Role = "company"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleCompany, RoleAdmin:
		return true
	}
	return false
}

// ParseRole normalizes s and rejects anything outside the three known roles.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", httperr.New(httperr.KindValidation, "invalid_role", "Role must be client, company or admin.")
	}
	return r, nil
}

// SelfRegistrable reports whether a visitor may sign up with r without an operator.
func (r Role) SelfRegistrable() bool {
	return r == RoleClient || r == RoleCompany
}
