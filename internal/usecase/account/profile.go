package account

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/access"
	domain "github.com/BruksfildServices01/service-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

// ======================================================
// CLIENT PORTAL
// ======================================================

type GetClientProfile struct {
	repo domain.Repository
}

func NewGetClientProfile(repo domain.Repository) *GetClientProfile {
	return &GetClientProfile{repo: repo}
}

func (uc *GetClientProfile) Execute(ctx context.Context, caller access.Subject, userID uint) (*models.User, error) {
	if err := access.CanAccessClientPortal(caller, userID); err != nil {
		return nil, err
	}
	return uc.repo.GetUserByID(ctx, userID)
}

// ClientProfilePatch carries the fields a client may change. Nil leaves a field as is.
type ClientProfilePatch struct {
	Name  *string
	Email *string
	Image *string
}

type UpdateClientProfile struct {
	repo       domain.Repository
	checkEmail EmailChecker
}

func NewUpdateClientProfile(repo domain.Repository, checkEmail EmailChecker) *UpdateClientProfile {
	return &UpdateClientProfile{repo: repo, checkEmail: checkEmail}
}

func (uc *UpdateClientProfile) Execute(
	ctx context.Context,
	caller access.Subject,
	userID uint,
	patch ClientProfilePatch,
) (*models.User, error) {

	if err := access.CanAccessClientPortal(caller, userID); err != nil {
		return nil, err
	}

	user, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if err := domain.ValidateName("name", *patch.Name); err != nil {
			return nil, err
		}
		user.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Email != nil {
		email, err := validEmail(ctx, uc.checkEmail, *patch.Email)
		if err != nil {
			return nil, err
		}
		user.Email = email
	}
	if patch.Image != nil {
		img, err := domain.NormalizeImage(patch.Image)
		if err != nil {
			return nil, err
		}
		user.Image = img
	}

	if err := uc.repo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ======================================================
// COMPANY PORTAL
// ======================================================

type GetCompany struct {
	repo domain.Repository
}

func NewGetCompany(repo domain.Repository) *GetCompany {
	return &GetCompany{repo: repo}
}

func (uc *GetCompany) Execute(ctx context.Context, caller access.Subject, companyID uint) (*models.Company, error) {
	company, err := uc.repo.GetCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if err := access.CanViewCompany(caller, company); err != nil {
		return nil, err
	}
	return company, nil
}

type CompanyPatch struct {
	Name     *string
	Location *string
	Image    *string
	// Owner may only repeat the current owner.
	Owner *uint
}

type UpdateCompany struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateCompany(repo domain.Repository, audit *audit.Dispatcher) *UpdateCompany {
	return &UpdateCompany{repo: repo, audit: audit}
}

// Execute applies patch to a company the caller owns. Ownership itself never changes here.
func (uc *UpdateCompany) Execute(
	ctx context.Context,
	caller access.Subject,
	companyID uint,
	patch CompanyPatch,
) (*models.Company, error) {

	company, err := uc.repo.GetCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if err := access.CanUpdateCompany(caller, company); err != nil {
		return nil, err
	}

	if patch.Owner != nil && *patch.Owner != company.OwnerID {
		return nil, httperr.New(httperr.KindValidation, "owner_immutable", "Company owner cannot be changed.")
	}

	changed := map[string]any{}
	if patch.Name != nil {
		if err := domain.ValidateName("name", *patch.Name); err != nil {
			return nil, err
		}
		company.Name = strings.TrimSpace(*patch.Name)
		changed["name"] = company.Name
	}
	if patch.Location != nil {
		company.Location = strings.TrimSpace(*patch.Location)
		changed["location"] = company.Location
	}
	if patch.Image != nil {
		img, err := domain.NormalizeImage(patch.Image)
		if err != nil {
			return nil, err
		}
		company.Image = img
		changed["image"] = img
	}

	if err := uc.repo.UpdateCompany(ctx, company); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: &company.ID,
		UserID:    &caller.UserID,
		Action:    "company_updated",
		Entity:    "company",
		EntityID:  &company.ID,
		Metadata:  changed,
	})

	return company, nil
}
