package booking

import (
	"context"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/service-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

type CreateRequestInput struct {
	BookingID uint
	Status    string
	Comment   string
}

type CreateRequest struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateRequest(repo domain.Repository, audit *audit.Dispatcher) *CreateRequest {
	return &CreateRequest{repo: repo, audit: audit}
}

func (uc *CreateRequest) Execute(ctx context.Context, in CreateRequestInput) (*models.Request, error) {
	r, err := domain.NewRequest(in.BookingID, in.Status, in.Comment)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBookingByID(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.CreateRequest(ctx, r); err != nil {
		return nil, err
	}

	uc.dispatch(ctx, b, r, "request_created")
	return r, nil
}

// UpdateRequest replaces a request's status and comment. Concurrent updates
// are last-write-wins.
type UpdateRequest struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateRequest(repo domain.Repository, audit *audit.Dispatcher) *UpdateRequest {
	return &UpdateRequest{repo: repo, audit: audit}
}

func (uc *UpdateRequest) Execute(
	ctx context.Context,
	requestID uint,
	status string,
	comment string,
) (*models.Request, error) {

	r, err := uc.repo.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	previous := r.Status
	if err := domain.Replace(r, status, comment); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateRequest(ctx, r); err != nil {
		return nil, err
	}

	if b, err := uc.repo.GetBookingByID(ctx, r.BookingsID); err == nil {
		uc.dispatchUpdate(ctx, b, r, previous)
	}
	return r, nil
}

type GetRequest struct {
	repo domain.Repository
}

func NewGetRequest(repo domain.Repository) *GetRequest {
	return &GetRequest{repo: repo}
}

func (uc *GetRequest) Execute(ctx context.Context, requestID uint) (*models.Request, error) {
	return uc.repo.GetRequestByID(ctx, requestID)
}

// companyOf resolves the company that owns b's service, nil when it is gone.
func companyOf(ctx context.Context, repo domain.Repository, b *models.Booking) *uint {
	svc, err := repo.GetServiceByID(ctx, b.ServicesID)
	if err != nil {
		return nil
	}
	return &svc.CompaniesID
}

func (uc *CreateRequest) dispatch(ctx context.Context, b *models.Booking, r *models.Request, action string) {
	if uc.audit == nil {
		return
	}
	uc.audit.Dispatch(audit.Event{
		CompanyID: companyOf(ctx, uc.repo, b),
		UserID:    &b.UsersID,
		Action:    action,
		Entity:    "request",
		EntityID:  &r.ID,
		Metadata:  map[string]string{"status": r.Status},
	})
}

func (uc *UpdateRequest) dispatchUpdate(ctx context.Context, b *models.Booking, r *models.Request, previous string) {
	if uc.audit == nil {
		return
	}
	uc.audit.Dispatch(audit.Event{
		CompanyID: companyOf(ctx, uc.repo, b),
		Action:    "request_updated",
		Entity:    "request",
		EntityID:  &r.ID,
		Metadata:  map[string]any{
			"from":         previous,
			"to":           r.Status,
			"conventional": domain.IsConventional(r.Status),
		},
	})
}
