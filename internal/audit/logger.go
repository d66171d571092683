package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

// Store persists audit rows.
type Store interface {
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
}

// Filter narrows an audit listing to one company.
type Filter struct {
	CompanyID uint
	Action    string
	Entity    string
	From      *time.Time
	To        *time.Time
	Page      int
	Limit     int
}

func (f Filter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type Reader interface {
	ListAuditLogs(ctx context.Context, f Filter) ([]models.AuditLog, int64, error)
}

type Logger struct {
	store Store
}

func New(store Store) *Logger {
	return &Logger{store: store}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	log := models.AuditLog{
		CompanyID: ev.CompanyID,
		UserID:    ev.UserID,
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		Metadata:  metaJSON,
	}

	return l.store.CreateAuditLog(ctx, &log)
}
