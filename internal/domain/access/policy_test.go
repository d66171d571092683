package access

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

func requireForbidden(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, httperr.KindForbidden, httperr.KindOf(err))
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole(" Company ")
	require.NoError(t, err)
	require.Equal(t, RoleCompany, r)

	_, err = ParseRole("owner")
	require.Error(t, err)
	require.Equal(t, httperr.KindValidation, httperr.KindOf(err))

	require.True(t, RoleClient.SelfRegistrable())
	require.True(t, RoleCompany.SelfRegistrable())
	require.False(t, RoleAdmin.SelfRegistrable())
}

func TestCanAccessClientPortal(t *testing.T) {
	require.NoError(t, CanAccessClientPortal(Subject{UserID: 3, Role: RoleClient}, 3))
	requireForbidden(t, CanAccessClientPortal(Subject{UserID: 3, Role: RoleClient}, 4))
	requireForbidden(t, CanAccessClientPortal(Subject{UserID: 3, Role: RoleCompany}, 3))
	requireForbidden(t, CanAccessClientPortal(Subject{UserID: 3, Role: RoleAdmin}, 3))
}

func TestCanDeleteService(t *testing.T) {
	company := &models.Company{ID: 9, OwnerID: 5}

	require.NoError(t, CanDeleteService(&models.User{ID: 5, Rol: "company"}, company))
	require.NoError(t, CanDeleteService(&models.User{ID: 5, Rol: "admin"}, company))

	requireForbidden(t, CanDeleteService(&models.User{ID: 5, Rol: "client"}, company))
	requireForbidden(t, CanDeleteService(&models.User{ID: 6, Rol: "company"}, company))
	requireForbidden(t, CanDeleteService(&models.User{ID: 6, Rol: "admin"}, company))
	requireForbidden(t, CanDeleteService(&models.User{ID: 5, Rol: "company"}, nil))
}

func TestCompanyPolicies(t *testing.T) {
	company := &models.Company{ID: 9, OwnerID: 5}

	require.NoError(t, CanViewCompany(Subject{UserID: 1, Role: RoleAdmin}, company))
	require.NoError(t, CanViewCompany(Subject{UserID: 5, Role: RoleCompany}, company))
	requireForbidden(t, CanViewCompany(Subject{UserID: 6, Role: RoleCompany}, company))
	requireForbidden(t, CanViewCompany(Subject{UserID: 5, Role: RoleClient}, company))

	require.NoError(t, CanUpdateCompany(Subject{UserID: 5, Role: RoleCompany}, company))
	requireForbidden(t, CanUpdateCompany(Subject{UserID: 6, Role: RoleCompany}, company))
	requireForbidden(t, CanUpdateCompany(Subject{UserID: 1, Role: RoleAdmin}, company))
}
