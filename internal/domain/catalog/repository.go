package catalog

import (
	"context"

	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

type Repository interface {
	// -------- Owners --------
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	GetCompanyByID(ctx context.Context, id uint) (*models.Company, error)

	// -------- Services --------
	CreateService(ctx context.Context, s *models.Service) error
	GetServiceByID(ctx context.Context, id uint) (*models.Service, error)

	// ListServices returns every service, or only companyID's when it is non-nil.
	ListServices(ctx context.Context, companyID *uint) ([]models.Service, error)
	DeleteService(ctx context.Context, id uint) error

	// -------- Master catalog --------
	ListMasterServices(ctx context.Context) ([]models.MasterService, error)
}
