package account

import (
	"context"

	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

type Repository interface {
	// -------- Users --------
	CreateUser(ctx context.Context, u *models.User) error

	// CreateUserWithCompany inserts both rows in one transaction and sets
	// c.OwnerID to the new user's id.
	CreateUserWithCompany(ctx context.Context, u *models.User, c *models.Company) error

	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, u *models.User) error

	// -------- Companies --------
	GetCompanyByID(ctx context.Context, id uint) (*models.Company, error)

	// FindCompanyByOwner returns (nil, nil) when the user owns no company.
	FindCompanyByOwner(ctx context.Context, ownerID uint) (*models.Company, error)
	UpdateCompany(ctx context.Context, c *models.Company) error
}
