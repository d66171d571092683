package booking

import (
	"context"

	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

type Repository interface {
	// -------- References --------
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	GetServiceByID(ctx context.Context, id uint) (*models.Service, error)

	// -------- Bookings --------
	CreateBooking(ctx context.Context, b *models.Booking) error
	GetBookingByID(ctx context.Context, id uint) (*models.Booking, error)
	ListBookingsByUser(ctx context.Context, userID uint) ([]models.Booking, error)

	// ListBookingsByCompany joins through services.companies_id.
	ListBookingsByCompany(ctx context.Context, companyID uint) ([]models.Booking, error)

	// -------- Requests --------
	CreateRequest(ctx context.Context, r *models.Request) error
	GetRequestByID(ctx context.Context, id uint) (*models.Request, error)
	UpdateRequest(ctx context.Context, r *models.Request) error
	ListRequestsByUser(ctx context.Context, userID uint) ([]models.Request, error)
	ListRequestsByCompany(ctx context.Context, companyID uint) ([]models.Request, error)
}
