package account

import (
	"context"

	"github.com/BruksfildServices01/service-marketplace/internal/domain/access"
	domain "github.com/BruksfildServices01/service-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
)

// EnsureAdmin seeds the operator account. Signup never creates admins.
type EnsureAdmin struct {
	repo domain.Repository
}

func NewEnsureAdmin(repo domain.Repository) *EnsureAdmin {
	return &EnsureAdmin{repo: repo}
}

// Execute creates the admin unless a user with email already exists. It
// reports whether a user was created.
func (uc *EnsureAdmin) Execute(ctx context.Context, name, email, password string) (bool, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return false, nil
	}

	_, err := uc.repo.GetUserByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if httperr.KindOf(err) != httperr.KindNotFound {
		return false, err
	}

	user, err := newUser(ctx, nil, name, email, password, access.RoleAdmin)
	if err != nil {
		return false, err
	}
	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return false, err
	}
	return true, nil
}
