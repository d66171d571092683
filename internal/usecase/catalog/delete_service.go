package catalog

import (
	"context"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/access"
	domain "github.com/BruksfildServices01/service-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
)

type DeleteService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteService(repo domain.Repository, audit *audit.Dispatcher) *DeleteService {
	return &DeleteService{repo: repo, audit: audit}
}

// Execute deletes serviceID on behalf of userID. When the call carried a
// token, caller is its subject and must be that same user.
func (uc *DeleteService) Execute(
	ctx context.Context,
	caller *access.Subject,
	userID uint,
	serviceID uint,
) error {

	if caller != nil && caller.UserID != userID {
		return httperr.New(httperr.KindForbidden, "token_user_mismatch", "Token does not belong to this user.")
	}

	user, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	svc, err := uc.repo.GetServiceByID(ctx, serviceID)
	if err != nil {
		return err
	}

	company, err := uc.repo.GetCompanyByID(ctx, svc.CompaniesID)
	if err != nil {
		return err
	}

	if err := access.CanDeleteService(user, company); err != nil {
		return err
	}

	if err := uc.repo.DeleteService(ctx, svc.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: &company.ID,
		UserID:    &user.ID,
		Action:    "service_deleted",
		Entity:    "service",
		EntityID:  &svc.ID,
		Metadata:  map[string]string{"name": svc.Name},
	})

	return nil
}
