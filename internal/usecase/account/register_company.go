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

type RegisterCompanyInput struct {
	Name     string
	Email    string
	Password string
	Role     string

	CompanyName string
	Location    string
}

// RegisterCompany creates a company account: the owner user and its company
// are stored together or not at all.
type RegisterCompany struct {
	repo       domain.Repository
	audit      *audit.Dispatcher
	checkEmail EmailChecker
}

func NewRegisterCompany(
	repo domain.Repository,
	audit *audit.Dispatcher,
	checkEmail EmailChecker,
) *RegisterCompany {
	return &RegisterCompany{
		repo:       repo,
		audit:      audit,
		checkEmail: checkEmail,
	}
}

func (uc *RegisterCompany) Execute(
	ctx context.Context,
	in RegisterCompanyInput,
) (*models.User, *models.Company, error) {

	role := access.RoleCompany
	if strings.TrimSpace(in.Role) != "" {
		r, err := access.ParseRole(in.Role)
		if err != nil {
			return nil, nil, err
		}
		if r != access.RoleCompany {
			return nil, nil, httperr.New(httperr.KindValidation, "role_not_allowed", "Company signup requires the company role.")
		}
	}

	if err := domain.ValidateName("company_name", in.CompanyName); err != nil {
		return nil, nil, err
	}

	user, err := newUser(ctx, uc.checkEmail, in.Name, in.Email, in.Password, role)
	if err != nil {
		return nil, nil, err
	}

	company := &models.Company{
		Name:     strings.TrimSpace(in.CompanyName),
		Location: strings.TrimSpace(in.Location),
	}

	if err := uc.repo.CreateUserWithCompany(ctx, user, company); err != nil {
		return nil, nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: &company.ID,
		UserID:    &user.ID,
		Action:    "company_registered",
		Entity:    "company",
		EntityID:  &company.ID,
	})

	return user, company, nil
}
