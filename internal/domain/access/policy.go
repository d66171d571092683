package access

import (
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

// Subject is the authenticated caller a policy is evaluated for.
type Subject struct {
	UserID uint
	Role   Role
}

func forbidden(code, message string) error {
	return httperr.New(httperr.KindForbidden, code, message)
}

// CanAccessClientPortal allows a client to read or change only its own record.
func CanAccessClientPortal(s Subject, userID uint) error {
	if s.Role != RoleClient {
		return forbidden("not_a_client", "User is not a client.")
	}
	if s.UserID != userID {
		return forbidden("not_own_profile", "Clients may only access their own profile.")
	}
	return nil
}

// CanDeleteService requires a company or admin account that owns the service's company.
func CanDeleteService(user *models.User, company *models.Company) error {
	r := Role(user.Rol)
	if r != RoleCompany && r != RoleAdmin {
		return forbidden("role_not_allowed", "Unauthorized access, only companies allowed.")
	}
	if company == nil || company.OwnerID != user.ID {
		return forbidden("not_service_owner", "Unauthorized access to delete this service.")
	}
	return nil
}

// CanViewCompany lets admins see any company and company users see their own.
func CanViewCompany(s Subject, company *models.Company) error {
	switch s.Role {
	case RoleAdmin:
		return nil
	case RoleCompany:
		if company.OwnerID == s.UserID {
			return nil
		}
		return forbidden("not_company_owner", "User does not own this company.")
	}
	return forbidden("role_not_allowed", "User is not authorized.")
}

func CanUpdateCompany(s Subject, company *models.Company) error {
	if s.Role != RoleCompany {
		return forbidden("role_not_allowed", "User is not authorized.")
	}
	if company.OwnerID != s.UserID {
		return forbidden("not_company_owner", "User does not own this company.")
	}
	return nil
}
