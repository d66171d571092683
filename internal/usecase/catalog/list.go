package catalog

import (
	"context"

	domain "github.com/BruksfildServices01/service-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

type ListServices struct {
	repo domain.Repository
}

func NewListServices(repo domain.Repository) *ListServices {
	return &ListServices{repo: repo}
}

// Execute lists all services, or one company's when companyID is set.
func (uc *ListServices) Execute(ctx context.Context, companyID *uint) ([]models.Service, error) {
	return uc.repo.ListServices(ctx, companyID)
}

type ListMasterServices struct {
	repo domain.Repository
}

func NewListMasterServices(repo domain.Repository) *ListMasterServices {
	return &ListMasterServices{repo: repo}
}

func (uc *ListMasterServices) Execute(ctx context.Context) ([]models.MasterService, error) {
	return uc.repo.ListMasterServices(ctx)
}
