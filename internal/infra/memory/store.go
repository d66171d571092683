// Package memory is an in-process implementation of the repository
// contracts, used by tests and by STORAGE_DRIVER=memory.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	"github.com/BruksfildServices01/service-marketplace/internal/domain"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

type Store struct {
	mu sync.RWMutex

	users          map[uint]models.User
	companies      map[uint]models.Company
	services       map[uint]models.Service
	masterServices map[uint]models.MasterService
	bookings       map[uint]models.Booking
	requests       map[uint]models.Request
	auditLogs      []models.AuditLog

	seq map[string]uint
	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:          make(map[uint]models.User),
		companies:      make(map[uint]models.Company),
		services:       make(map[uint]models.Service),
		masterServices: make(map[uint]models.MasterService),
		bookings:       make(map[uint]models.Booking),
		requests:       make(map[uint]models.Request),
		seq:            make(map[string]uint),
		now:            time.Now,
	}
}

// SeedMasterServices replaces the read-only template catalog.
func (s *Store) SeedMasterServices(items ...models.MasterService) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.masterServices = make(map[uint]models.MasterService, len(items))
	for _, item := range items {
		if item.ID == 0 {
			item.ID = s.next("master_services")
		}
		s.masterServices[item.ID] = item
	}
}

func (s *Store) next(table string) uint {
	s.seq[table]++
	return s.seq[table]
}

// -------- Users --------

func (s *Store) CreateUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertUser(u)
}

func (s *Store) insertUser(u *models.User) error {
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return domain.EmailTaken(nil)
		}
	}
	u.ID = s.next("users")
	u.CreatedAt = s.now()
	u.UpdatedAt = u.CreatedAt
	s.users[u.ID] = *u
	return nil
}

func (s *Store) CreateUserWithCompany(_ context.Context, u *models.User, c *models.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.insertUser(u); err != nil {
		return err
	}
	c.OwnerID = u.ID
	c.ID = s.next("companies")
	c.CreatedAt = s.now()
	c.UpdatedAt = c.CreatedAt
	s.companies[c.ID] = *c
	return nil
}

func (s *Store) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, domain.NotFound("user")
	}
	return &u, nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.NotFound("user")
}

func (s *Store) UpdateUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.users[u.ID]
	if !ok {
		return domain.NotFound("user")
	}
	for id, other := range s.users {
		if id != u.ID && other.Email == u.Email {
			return domain.EmailTaken(nil)
		}
	}

	current.Name = u.Name
	current.Email = u.Email
	current.Image = u.Image
	current.UpdatedAt = s.now()
	s.users[u.ID] = current
	*u = current
	return nil
}

// -------- Companies --------

func (s *Store) GetCompanyByID(_ context.Context, id uint) (*models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.companies[id]
	if !ok {
		return nil, domain.NotFound("company")
	}
	return &c, nil
}

func (s *Store) FindCompanyByOwner(_ context.Context, ownerID uint) (*models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found *models.Company
	for _, c := range s.companies {
		if c.OwnerID == ownerID && (found == nil || c.ID < found.ID) {
			c := c
			found = &c
		}
	}
	return found, nil
}

func (s *Store) UpdateCompany(_ context.Context, c *models.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.companies[c.ID]
	if !ok {
		return domain.NotFound("company")
	}
	current.Name = c.Name
	current.Location = c.Location
	current.Image = c.Image
	current.UpdatedAt = s.now()
	s.companies[c.ID] = current
	*c = current
	return nil
}

// -------- Services --------

func (s *Store) CreateService(_ context.Context, svc *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.companies[svc.CompaniesID]; !ok {
		return domain.NotFound("company")
	}
	svc.ID = s.next("services")
	svc.CreatedAt = s.now()
	svc.UpdatedAt = svc.CreatedAt
	s.services[svc.ID] = *svc
	return nil
}

func (s *Store) GetServiceByID(_ context.Context, id uint) (*models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	svc, ok := s.services[id]
	if !ok {
		return nil, domain.NotFound("service")
	}
	return &svc, nil
}

func (s *Store) ListServices(_ context.Context, companyID *uint) ([]models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Service, 0, len(s.services))
	for _, svc := range s.services {
		if companyID == nil || svc.CompaniesID == *companyID {
			out = append(out, svc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// DeleteService cascades to the service's bookings and their requests, like
// the ON DELETE CASCADE constraints in the SQL schema.
func (s *Store) DeleteService(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.services[id]; !ok {
		return domain.NotFound("service")
	}
	delete(s.services, id)

	for bid, b := range s.bookings {
		if b.ServicesID != id {
			continue
		}
		delete(s.bookings, bid)
		for rid, r := range s.requests {
			if r.BookingsID == bid {
				delete(s.requests, rid)
			}
		}
	}
	return nil
}

func (s *Store) ListMasterServices(_ context.Context) ([]models.MasterService, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.MasterService, 0, len(s.masterServices))
	for _, m := range s.masterServices {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// -------- Bookings --------

func (s *Store) CreateBooking(_ context.Context, b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.services[b.ServicesID]; !ok {
		return domain.NotFound("service")
	}
	if _, ok := s.users[b.UsersID]; !ok {
		return domain.NotFound("user")
	}
	b.ID = s.next("bookings")
	b.CreatedAt = s.now()
	s.bookings[b.ID] = *b
	return nil
}

func (s *Store) GetBookingByID(_ context.Context, id uint) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, domain.NotFound("booking")
	}
	return &b, nil
}

func (s *Store) ListBookingsByUser(_ context.Context, userID uint) ([]models.Booking, error) {
	return s.filterBookings(func(b models.Booking) bool { return b.UsersID == userID }), nil
}

func (s *Store) ListBookingsByCompany(_ context.Context, companyID uint) ([]models.Booking, error) {
	return s.filterBookings(func(b models.Booking) bool {
		return s.services[b.ServicesID].CompaniesID == companyID
	}), nil
}

func (s *Store) filterBookings(keep func(models.Booking) bool) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Booking, 0)
	for _, b := range s.bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// -------- Requests --------

func (s *Store) CreateRequest(_ context.Context, r *models.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[r.BookingsID]; !ok {
		return domain.NotFound("booking")
	}
	r.ID = s.next("requests")
	r.CreatedAt = s.now()
	r.UpdatedAt = r.CreatedAt
	s.requests[r.ID] = *r
	return nil
}

func (s *Store) GetRequestByID(_ context.Context, id uint) (*models.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.requests[id]
	if !ok {
		return nil, domain.NotFound("request")
	}
	return &r, nil
}

func (s *Store) UpdateRequest(_ context.Context, r *models.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.requests[r.ID]
	if !ok {
		return domain.NotFound("request")
	}
	current.Status = r.Status
	current.Comment = r.Comment
	current.UpdatedAt = s.now()
	s.requests[r.ID] = current
	*r = current
	return nil
}

func (s *Store) ListRequestsByUser(_ context.Context, userID uint) ([]models.Request, error) {
	return s.filterRequests(func(b models.Booking) bool { return b.UsersID == userID }), nil
}

func (s *Store) ListRequestsByCompany(_ context.Context, companyID uint) ([]models.Request, error) {
	return s.filterRequests(func(b models.Booking) bool {
		return s.services[b.ServicesID].CompaniesID == companyID
	}), nil
}

// filterRequests keeps requests whose booking satisfies keep.
func (s *Store) filterRequests(keep func(models.Booking) bool) []models.Request {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Request, 0)
	for _, r := range s.requests {
		if b, ok := s.bookings[r.BookingsID]; ok && keep(b) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// -------- Audit logs --------

func (s *Store) CreateAuditLog(_ context.Context, log *models.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log.ID = s.next("audit_logs")
	if log.CreatedAt.IsZero() {
		log.CreatedAt = s.now()
	}
	s.auditLogs = append(s.auditLogs, *log)
	return nil
}

func (s *Store) ListAuditLogs(_ context.Context, f audit.Filter) ([]models.AuditLog, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]models.AuditLog, 0)
	for _, l := range s.auditLogs {
		if l.CompanyID == nil || *l.CompanyID != f.CompanyID {
			continue
		}
		if f.Action != "" && l.Action != f.Action {
			continue
		}
		if f.Entity != "" && l.Entity != f.Entity {
			continue
		}
		if f.From != nil && l.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && !l.CreatedAt.Before(*f.To) {
			continue
		}
		matched = append(matched, l)
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := f.Offset()
	if start < 0 {
		start = 0
	}
	if start >= len(matched) {
		return []models.AuditLog{}, total, nil
	}
	end := start + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

var (
	_ account.Repository = (*Store)(nil)
	_ catalog.Repository = (*Store)(nil)
	_ booking.Repository = (*Store)(nil)
	_ audit.Store        = (*Store)(nil)
	_ audit.Reader       = (*Store)(nil)
)
