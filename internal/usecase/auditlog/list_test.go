package auditlog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/service-marketplace/internal/domain/access"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/infra/memory"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

func TestList(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	owner := &models.User{Name: "Bo", Email: "bo@x.com", Rol: "company"}
	company := &models.Company{Name: "Acme"}
	require.NoError(t, s.CreateUserWithCompany(ctx, owner, company))

	day := time.Date(2024, 6, 11, 10, 0, 0, 0, time.UTC)
	for i, action := range []string{"service_created", "booking_created", "booking_created"} {
		require.NoError(t, s.CreateAuditLog(ctx, &models.AuditLog{
			CompanyID: &company.ID,
			Action:    action,
			CreatedAt: day.AddDate(0, 0, i),
		}))
	}

	uc := NewList(s, s, "UTC")
	self := access.Subject{UserID: owner.ID, Role: access.RoleCompany}

	page, err := uc.Execute(ctx, self, Query{CompanyID: company.ID})
	require.NoError(t, err)
	require.Equal(t, 1, page.Page)
	require.Equal(t, defaultLimit, page.Limit)
	require.Equal(t, int64(3), page.Total)

	page, err = uc.Execute(ctx, self, Query{CompanyID: company.ID, Action: "booking_created", To: "2024-06-12"})
	require.NoError(t, err)
	require.Equal(t, int64(1), page.Total)

	page, err = uc.Execute(ctx, self, Query{CompanyID: company.ID, From: "2024-06-12", Limit: 1000})
	require.NoError(t, err)
	require.Equal(t, int64(2), page.Total)
	require.Equal(t, defaultLimit, page.Limit)

	_, err = uc.Execute(ctx, self, Query{CompanyID: company.ID, From: "yesterday"})
	require.True(t, httperr.IsBusiness(err, "invalid_from"))

	_, err = uc.Execute(ctx, access.Subject{UserID: owner.ID + 1, Role: access.RoleCompany}, Query{CompanyID: company.ID})
	require.Equal(t, httperr.KindForbidden, httperr.KindOf(err))

	_, err = uc.Execute(ctx, self, Query{CompanyID: 999})
	require.True(t, httperr.IsBusiness(err, "company_not_found"))
}
