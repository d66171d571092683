package repository

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

// sqlRecorder keeps every statement gorm renders, with bound values inlined.
type sqlRecorder struct {
	logger.Interface
	stmts []string
}

func (r *sqlRecorder) LogMode(logger.LogLevel) logger.Interface { return r }

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	stmt, _ := fc()
	r.stmts = append(r.stmts, stmt)
}

func (r *sqlRecorder) last(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, r.stmts)
	return r.stmts[len(r.stmts)-1]
}

// dryRunRepo renders postgres SQL without touching a server. The DSN points at
// a socket that does not exist, so anything that really connects fails fast.
func dryRunRepo(t *testing.T) (*MarketplaceGormRepository, *sqlRecorder) {
	t.Helper()

	sqlDB, err := sql.Open("pgx", "host=/nonexistent/socket user=market dbname=market connect_timeout=1")
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	rec := &sqlRecorder{Interface: logger.Discard}
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               rec,
	})
	require.NoError(t, err)

	return NewMarketplaceGormRepository(db, nil), rec
}

func TestCreateServiceKeepsUnavailableFlag(t *testing.T) {
	repo, rec := dryRunRepo(t)

	err := repo.CreateService(context.Background(), &models.Service{
		Name:        "Cut",
		Price:       25,
		Duration:    30,
		CompaniesID: 1,
		Available:   false,
	})
	require.NoError(t, err)

	stmt := rec.last(t)
	require.True(t, strings.HasPrefix(stmt, `INSERT INTO "services"`), stmt)
	require.Contains(t, stmt, `"available"`)
	require.Contains(t, stmt, ",1,false,NULL,")
}

func TestListBookingsByCompanyJoinsServices(t *testing.T) {
	repo, rec := dryRunRepo(t)

	_, err := repo.ListBookingsByCompany(context.Background(), 7)
	require.NoError(t, err)

	stmt := rec.last(t)
	require.Contains(t, stmt, `SELECT "bookings"."id",`)
	require.Contains(t, stmt, `FROM "bookings" JOIN services ON services.id = bookings.services_id`)
	require.Contains(t, stmt, "WHERE services.companies_id = 7")
	require.Contains(t, stmt, "ORDER BY bookings.id ASC")
}

func TestListRequestsJoins(t *testing.T) {
	repo, rec := dryRunRepo(t)
	ctx := context.Background()

	_, err := repo.ListRequestsByUser(ctx, 3)
	require.NoError(t, err)
	stmt := rec.last(t)
	require.Contains(t, stmt, `SELECT "requests"."id",`)
	require.Contains(t, stmt, "JOIN bookings ON bookings.id = requests.bookings_id")
	require.Contains(t, stmt, "WHERE bookings.users_id = 3")
	require.NotContains(t, stmt, "JOIN services")

	_, err = repo.ListRequestsByCompany(ctx, 9)
	require.NoError(t, err)
	stmt = rec.last(t)
	require.Contains(t, stmt, "JOIN bookings ON bookings.id = requests.bookings_id JOIN services ON services.id = bookings.services_id")
	require.Contains(t, stmt, "WHERE services.companies_id = 9")
	require.Contains(t, stmt, "ORDER BY requests.id ASC")
}

func TestUpdateRequestColumnSet(t *testing.T) {
	repo, rec := dryRunRepo(t)

	// nothing runs in dry mode, so no row is reported as affected
	err := repo.UpdateRequest(context.Background(), &models.Request{
		ID:         4,
		BookingsID: 2,
		Status:     "accepted",
		Comment:    "see you",
	})
	require.True(t, httperr.IsBusiness(err, "request_not_found"))

	stmt := rec.last(t)
	require.True(t, strings.HasPrefix(stmt, `UPDATE "requests" SET "status"='accepted',"comment"='see you',"updated_at"=`), stmt)
	require.Contains(t, stmt, `"id" = 4`)
	require.NotContains(t, stmt, "bookings_id")
	require.NotContains(t, stmt, "created_at")
}

func TestUpdateCompanyLeavesOwnerAlone(t *testing.T) {
	repo, rec := dryRunRepo(t)

	_ = repo.UpdateCompany(context.Background(), &models.Company{
		ID:       5,
		Name:     "Acme",
		Location: "LA",
		OwnerID:  99,
	})

	stmt := rec.last(t)
	require.True(t, strings.HasPrefix(stmt, `UPDATE "companies" SET "name"='Acme',"location"='LA',"image"=NULL,"updated_at"=`), stmt)
	require.NotContains(t, stmt, `"owner"=`)
}

func TestCreateUserWithCompanyResetsIDsOnFailure(t *testing.T) {
	repo, _ := dryRunRepo(t)

	u := &models.User{ID: 11, Name: "A", Email: "a@x.com", PasswordHash: "h", Rol: "company"}
	c := &models.Company{ID: 12, Name: "Acme", Location: "NYC"}

	// the transaction cannot begin without a server
	err := repo.CreateUserWithCompany(context.Background(), u, c)
	require.Error(t, err)
	require.Equal(t, httperr.KindInternal, httperr.KindOf(err))
	require.Zero(t, u.ID)
	require.Zero(t, c.ID)
}

func TestSeedMasterServicesLooksUpByName(t *testing.T) {
	repo, rec := dryRunRepo(t)

	err := repo.SeedMasterServices(context.Background(),
		models.MasterService{Name: "Haircut", Type: "beauty"},
		models.MasterService{Name: "Massage", Type: "wellness"},
	)
	require.NoError(t, err)

	joined := strings.Join(rec.stmts, "\n")
	require.Contains(t, joined, `"master_services"."name" = 'Haircut'`)
	require.Contains(t, joined, `INSERT INTO "master_services" ("name","description","type") VALUES ('Massage','','wellness')`)
}
