package catalog

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/account"
	domain "github.com/BruksfildServices01/service-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

type CreateServiceInput struct {
	CompanyID   uint
	Name        string
	Description string
	Type        string
	Price       float64
	Duration    int
	// nil means available
	Available *bool
	Image     *string
}

type CreateService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateService(repo domain.Repository, audit *audit.Dispatcher) *CreateService {
	return &CreateService{repo: repo, audit: audit}
}

func (uc *CreateService) Execute(ctx context.Context, in CreateServiceInput) (*models.Service, error) {
	if in.CompanyID == 0 {
		return nil, httperr.New(httperr.KindValidation, "missing_company", "Field companyid is required.")
	}
	if err := account.ValidateName("name", in.Name); err != nil {
		return nil, err
	}
	if err := domain.ValidateOffer(in.Price, in.Duration); err != nil {
		return nil, err
	}
	img, err := account.NormalizeImage(in.Image)
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetCompanyByID(ctx, in.CompanyID); err != nil {
		return nil, err
	}

	available := true
	if in.Available != nil {
		available = *in.Available
	}

	svc := &models.Service{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Type:        strings.TrimSpace(in.Type),
		Price:       in.Price,
		Duration:    in.Duration,
		CompaniesID: in.CompanyID,
		Available:   available,
		Image:       img,
	}

	if err := uc.repo.CreateService(ctx, svc); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: &svc.CompaniesID,
		Action:    "service_created",
		Entity:    "service",
		EntityID:  &svc.ID,
		Metadata:  map[string]any{"price": svc.Price, "duration": svc.Duration},
	})

	return svc, nil
}
