package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	"github.com/BruksfildServices01/service-marketplace/internal/domain"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

type MarketplaceGormRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewMarketplaceGormRepository(db *gorm.DB, logger *slog.Logger) *MarketplaceGormRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &MarketplaceGormRepository{db: db, logger: logger}
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *MarketplaceGormRepository) CreateUser(
	ctx context.Context,
	u *models.User,
) error {
	return r.classify("create_user", "user", r.db.WithContext(ctx).Create(u).Error)
}

func (r *MarketplaceGormRepository) CreateUserWithCompany(
	ctx context.Context,
	u *models.User,
	c *models.Company,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			return err
		}
		c.OwnerID = u.ID
		return tx.Create(c).Error
	})
	if err != nil {
		// the transaction rolled back; ids assigned in memory are stale
		u.ID = 0
		c.ID = 0
	}
	return r.classify("create_company_account", "user", err)
}

func (r *MarketplaceGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, r.classify("get_user", "user", err)
	}
	return &user, nil
}

func (r *MarketplaceGormRepository) GetUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, r.classify("get_user", "user", err)
	}
	return &user, nil
}

func (r *MarketplaceGormRepository) UpdateUser(
	ctx context.Context,
	u *models.User,
) error {

	res := r.db.WithContext(ctx).
		Model(u).
		Select("name", "email", "image", "updated_at").
		Updates(u)
	if res.Error != nil {
		return r.classify("update_user", "user", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("user")
	}
	return nil
}

// --------------------------------------------------
// Companies
// --------------------------------------------------

func (r *MarketplaceGormRepository) GetCompanyByID(
	ctx context.Context,
	id uint,
) (*models.Company, error) {

	var company models.Company
	if err := r.db.WithContext(ctx).First(&company, id).Error; err != nil {
		return nil, r.classify("get_company", "company", err)
	}
	return &company, nil
}

func (r *MarketplaceGormRepository) FindCompanyByOwner(
	ctx context.Context,
	ownerID uint,
) (*models.Company, error) {

	var companies []models.Company
	if err := r.db.WithContext(ctx).
		Where("owner = ?", ownerID).
		Order("id ASC").
		Limit(1).
		Find(&companies).Error; err != nil {
		return nil, r.classify("get_company", "company", err)
	}
	if len(companies) == 0 {
		return nil, nil
	}
	return &companies[0], nil
}

func (r *MarketplaceGormRepository) UpdateCompany(
	ctx context.Context,
	c *models.Company,
) error {

	res := r.db.WithContext(ctx).
		Model(c).
		Select("name", "location", "image", "updated_at").
		Updates(c)
	if res.Error != nil {
		return r.classify("update_company", "company", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("company")
	}
	return nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *MarketplaceGormRepository) CreateService(
	ctx context.Context,
	s *models.Service,
) error {
	return r.classify("create_service", "service", r.db.WithContext(ctx).Create(s).Error)
}

func (r *MarketplaceGormRepository) GetServiceByID(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, r.classify("get_service", "service", err)
	}
	return &service, nil
}

func (r *MarketplaceGormRepository) ListServices(
	ctx context.Context,
	companyID *uint,
) ([]models.Service, error) {

	q := r.db.WithContext(ctx).Model(&models.Service{})
	if companyID != nil {
		q = q.Where("companies_id = ?", *companyID)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		return nil, r.classify("list_services", "service", err)
	}
	return services, nil
}

func (r *MarketplaceGormRepository) DeleteService(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Service{}, id)
	if res.Error != nil {
		return r.classify("delete_service", "service", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("service")
	}
	return nil
}

func (r *MarketplaceGormRepository) ListMasterServices(
	ctx context.Context,
) ([]models.MasterService, error) {

	var items []models.MasterService
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, r.classify("list_master_services", "master service", err)
	}
	return items, nil
}

// SeedMasterServices inserts the template entries whose name is not stored yet.
func (r *MarketplaceGormRepository) SeedMasterServices(
	ctx context.Context,
	items ...models.MasterService,
) error {

	for _, item := range items {
		row := item
		if err := r.db.WithContext(ctx).
			Where(models.MasterService{Name: item.Name}).
			FirstOrCreate(&row).Error; err != nil {
			return r.classify("seed_master_services", "master service", err)
		}
	}
	return nil
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

func (r *MarketplaceGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.classify("create_booking", "booking", r.db.WithContext(ctx).Create(b).Error)
}

func (r *MarketplaceGormRepository) GetBookingByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, r.classify("get_booking", "booking", err)
	}
	return &b, nil
}

func (r *MarketplaceGormRepository) ListBookingsByUser(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {

	var items []models.Booking
	if err := r.db.WithContext(ctx).
		Where("users_id = ?", userID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, r.classify("list_bookings", "booking", err)
	}
	return items, nil
}

func (r *MarketplaceGormRepository) ListBookingsByCompany(
	ctx context.Context,
	companyID uint,
) ([]models.Booking, error) {

	var items []models.Booking
	if err := r.db.WithContext(ctx).
		Joins("JOIN services ON services.id = bookings.services_id").
		Where("services.companies_id = ?", companyID).
		Order("bookings.id ASC").
		Find(&items).Error; err != nil {
		return nil, r.classify("list_bookings", "booking", err)
	}
	return items, nil
}

// --------------------------------------------------
// Requests
// --------------------------------------------------

func (r *MarketplaceGormRepository) CreateRequest(
	ctx context.Context,
	req *models.Request,
) error {
	return r.classify("create_request", "request", r.db.WithContext(ctx).Create(req).Error)
}

func (r *MarketplaceGormRepository) GetRequestByID(
	ctx context.Context,
	id uint,
) (*models.Request, error) {

	var req models.Request
	if err := r.db.WithContext(ctx).First(&req, id).Error; err != nil {
		return nil, r.classify("get_request", "request", err)
	}
	return &req, nil
}

func (r *MarketplaceGormRepository) UpdateRequest(
	ctx context.Context,
	req *models.Request,
) error {

	res := r.db.WithContext(ctx).
		Model(req).
		Select("status", "comment", "updated_at").
		Updates(req)
	if res.Error != nil {
		return r.classify("update_request", "request", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("request")
	}
	return nil
}

func (r *MarketplaceGormRepository) ListRequestsByUser(
	ctx context.Context,
	userID uint,
) ([]models.Request, error) {

	var items []models.Request
	if err := r.db.WithContext(ctx).
		Joins("JOIN bookings ON bookings.id = requests.bookings_id").
		Where("bookings.users_id = ?", userID).
		Order("requests.id ASC").
		Find(&items).Error; err != nil {
		return nil, r.classify("list_requests", "request", err)
	}
	return items, nil
}

func (r *MarketplaceGormRepository) ListRequestsByCompany(
	ctx context.Context,
	companyID uint,
) ([]models.Request, error) {

	var items []models.Request
	if err := r.db.WithContext(ctx).
		Joins("JOIN bookings ON bookings.id = requests.bookings_id").
		Joins("JOIN services ON services.id = bookings.services_id").
		Where("services.companies_id = ?", companyID).
		Order("requests.id ASC").
		Find(&items).Error; err != nil {
		return nil, r.classify("list_requests", "request", err)
	}
	return items, nil
}

// --------------------------------------------------
// Audit logs
// --------------------------------------------------

func (r *MarketplaceGormRepository) CreateAuditLog(
	ctx context.Context,
	log *models.AuditLog,
) error {
	return r.classify("create_audit_log", "audit log", r.db.WithContext(ctx).Create(log).Error)
}

func (r *MarketplaceGormRepository) ListAuditLogs(
	ctx context.Context,
	f audit.Filter,
) ([]models.AuditLog, int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("company_id = ?", f.CompanyID)

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, r.classify("count_audit_logs", "audit log", err)
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset()).
		Find(&logs).Error; err != nil {
		return nil, 0, r.classify("list_audit_logs", "audit log", err)
	}

	return logs, total, nil
}

// --------------------------------------------------
// Error classification
// --------------------------------------------------

// classify turns a gorm/pgx failure into a business error. Only
// unclassified failures are logged; the rest are expected client outcomes.
func (r *MarketplaceGormRepository) classify(op, entity string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.NotFoundErr(entity, err)
	case isUniqueViolation(err):
		if entity == "user" {
			return domain.EmailTaken(err)
		}
		return domain.Conflict(entity, err)
	case isForeignKeyViolation(err):
		return domain.NotFoundErr(referencedEntity(err), err)
	}

	r.logger.Error("storage operation failed",
		"op", op,
		"entity", entity,
		"error", err,
	)
	return domain.Storage(op, err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

// fkEntities maps the constraint names declared in the migrations to the
// entity whose absence they report.
var fkEntities = map[string]string{
	"fk_companies_owner":  "user",
	"fk_services_company": "company",
	"fk_bookings_service": "service",
	"fk_bookings_user":    "user",
	"fk_requests_booking": "booking",
}

func referencedEntity(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if e, ok := fkEntities[pgErr.ConstraintName]; ok {
			return e
		}
	}
	return "referenced record"
}

// Compile-time checks
var (
	_ account.Repository = (*MarketplaceGormRepository)(nil)
	_ catalog.Repository = (*MarketplaceGormRepository)(nil)
	_ booking.Repository = (*MarketplaceGormRepository)(nil)
	_ audit.Store        = (*MarketplaceGormRepository)(nil)
	_ audit.Reader       = (*MarketplaceGormRepository)(nil)
)
