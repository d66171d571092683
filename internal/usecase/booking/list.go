package booking

import (
	"context"

	domain "github.com/BruksfildServices01/service-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

// History answers the per-user and per-company booking and request listings.
type History struct {
	repo domain.Repository
}

func NewHistory(repo domain.Repository) *History {
	return &History{repo: repo}
}

func (uc *History) UserBookings(ctx context.Context, userID uint) ([]models.Booking, error) {
	return uc.repo.ListBookingsByUser(ctx, userID)
}

func (uc *History) UserRequests(ctx context.Context, userID uint) ([]models.Request, error) {
	return uc.repo.ListRequestsByUser(ctx, userID)
}

func (uc *History) CompanyBookings(ctx context.Context, companyID uint) ([]models.Booking, error) {
	return uc.repo.ListBookingsByCompany(ctx, companyID)
}

func (uc *History) CompanyRequests(ctx context.Context, companyID uint) ([]models.Request, error) {
	return uc.repo.ListRequestsByCompany(ctx, companyID)
}
