package auditlog

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/access"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
	"github.com/BruksfildServices01/service-marketplace/internal/timezone"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// Query is the raw listing request; dates are YYYY-MM-DD in the marketplace timezone.
type Query struct {
	CompanyID uint
	Action    string
	Entity    string
	From      string
	To        string
	Page      int
	Limit     int
}

type Page struct {
	Page  int
	Limit int
	Total int64
	Logs  []models.AuditLog
}

type List struct {
	companies account.Repository
	logs      audit.Reader
	timezone  string
}

func NewList(companies account.Repository, logs audit.Reader, timezone string) *List {
	return &List{companies: companies, logs: logs, timezone: timezone}
}

func (uc *List) Execute(ctx context.Context, caller access.Subject, q Query) (*Page, error) {
	company, err := uc.companies.GetCompanyByID(ctx, q.CompanyID)
	if err != nil {
		return nil, err
	}
	if err := access.CanViewCompany(caller, company); err != nil {
		return nil, err
	}

	f := audit.Filter{
		CompanyID: company.ID,
		Action:    strings.TrimSpace(q.Action),
		Entity:    strings.TrimSpace(q.Entity),
		Page:      q.Page,
		Limit:     q.Limit,
	}
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > maxLimit {
		f.Limit = defaultLimit
	}

	loc := timezone.Location(uc.timezone)
	if q.From != "" {
		from, err := time.ParseInLocation(timezone.DateLayout, q.From, loc)
		if err != nil {
			return nil, httperr.New(httperr.KindValidation, "invalid_from", "Parameter from must be YYYY-MM-DD.")
		}
		f.From = &from
	}
	if q.To != "" {
		to, err := time.ParseInLocation(timezone.DateLayout, q.To, loc)
		if err != nil {
			return nil, httperr.New(httperr.KindValidation, "invalid_to", "Parameter to must be YYYY-MM-DD.")
		}
		// inclusive of the whole day
		end := to.AddDate(0, 0, 1)
		f.To = &end
	}

	logs, total, err := uc.logs.ListAuditLogs(ctx, f)
	if err != nil {
		return nil, err
	}

	return &Page{Page: f.Page, Limit: f.Limit, Total: total, Logs: logs}, nil
}
