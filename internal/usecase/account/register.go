package account

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	"github.com/BruksfildServices01/service-marketplace/internal/auth"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/access"
	domain "github.com/BruksfildServices01/service-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

// EmailChecker reports whether an address can plausibly receive mail.
type EmailChecker func(ctx context.Context, email string) bool

// ======================================================
// INPUT
// ======================================================

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// ======================================================
// USE CASE
// ======================================================

type Register struct {
	repo       domain.Repository
	audit      *audit.Dispatcher
	checkEmail EmailChecker
}

func NewRegister(
	repo domain.Repository,
	audit *audit.Dispatcher,
	checkEmail EmailChecker,
) *Register {
	return &Register{
		repo:       repo,
		audit:      audit,
		checkEmail: checkEmail,
	}
}

func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*models.User, error) {

	role, err := access.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}
	if !role.SelfRegistrable() {
		return nil, httperr.New(httperr.KindValidation, "role_not_allowed", "Only client or company accounts can sign up.")
	}

	user, err := newUser(ctx, uc.checkEmail, in.Name, in.Email, in.Password, role)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &user.ID,
		Metadata: map[string]string{"rol": user.Rol},
	})

	return user, nil
}

// newUser validates the credential fields and hashes the password.
func newUser(
	ctx context.Context,
	checkEmail EmailChecker,
	name, email, password string,
	role access.Role,
) (*models.User, error) {

	if err := domain.ValidateName("name", name); err != nil {
		return nil, err
	}

	email, err := validEmail(ctx, checkEmail, email)
	if err != nil {
		return nil, err
	}

	if password == "" {
		return nil, httperr.New(httperr.KindValidation, "invalid_password", "Password is required.")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, httperr.Wrap(httperr.KindInternal, "password_hash_failed", "Could not process the password.", err)
	}

	return &models.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		Rol:          string(role),
	}, nil
}

func validEmail(ctx context.Context, checkEmail EmailChecker, email string) (string, error) {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return "", httperr.New(httperr.KindValidation, "invalid_email", "Email is required.")
	}
	if checkEmail != nil && !checkEmail(ctx, email) {
		return "", httperr.New(httperr.KindValidation, "invalid_email_domain", "The email domain does not look valid.")
	}
	return email, nil
}
