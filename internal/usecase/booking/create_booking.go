package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/service-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ServiceID uint
	UserID    uint

	Date string
	Time string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	timezone string
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	timezone string,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		audit:    audit,
		timezone: timezone,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// Slot in the marketplace timezone
	// --------------------------------------------------
	b, err := domain.NewBooking(uc.timezone, in.ServiceID, in.UserID, in.Date, in.Time)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// References
	// --------------------------------------------------
	svc, err := uc.repo.GetServiceByID(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.repo.GetUserByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: &svc.CompaniesID,
		UserID:    &b.UsersID,
		Action:    "booking_created",
		Entity:    "booking",
		EntityID:  &b.ID,
		Metadata:  map[string]string{"starts_at": b.StartsAt.Format(time.RFC3339)},
	})

	return b, nil
}
