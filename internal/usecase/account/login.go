package account

import (
	"context"
	"time"

	"github.com/BruksfildServices01/service-marketplace/internal/auth"
	domain "github.com/BruksfildServices01/service-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
)

const badCredentials = "Bad email or password"

type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time

	UserID   uint
	Username string
	Rol      string

	// set only when the user owns a company
	CompanyID   *uint
	CompanyName *string
}

type Login struct {
	repo   domain.Repository
	tokens *auth.TokenIssuer
}

func NewLogin(repo domain.Repository, tokens *auth.TokenIssuer) *Login {
	return &Login{repo: repo, tokens: tokens}
}

// Execute answers an unknown email and a wrong password identically.
func (uc *Login) Execute(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := uc.repo.GetUserByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if httperr.KindOf(err) != httperr.KindNotFound {
			return nil, err
		}
		auth.CompareDummy(password)
		return nil, invalidCredentials()
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, invalidCredentials()
	}

	token, exp, err := uc.tokens.Issue(user.ID, user.Rol)
	if err != nil {
		return nil, httperr.Wrap(httperr.KindInternal, "token_issue_failed", "Could not issue a token.", err)
	}

	res := &LoginResult{
		AccessToken: token,
		ExpiresAt:   exp,
		UserID:      user.ID,
		Username:    user.Name,
		Rol:         user.Rol,
	}

	company, err := uc.repo.FindCompanyByOwner(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if company != nil {
		res.CompanyID = &company.ID
		res.CompanyName = &company.Name
	}

	return res, nil
}

func invalidCredentials() error {
	return httperr.New(httperr.KindUnauthorized, "invalid_credentials", badCredentials)
}
