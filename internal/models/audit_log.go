package models

import "time"

// AuditLog is one append-only trail entry. CompanyID is nil for events that
// happen before a company exists, like a client signing up.
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CompanyID *uint     `gorm:"index:idx_audit_logs_company_created,priority:1" json:"company_id"`
	UserID    *uint     `json:"user_id"`
	Action    string    `gorm:"size:50;not null" json:"action"`
	Entity    string    `gorm:"size:50" json:"entity"`
	EntityID  *uint     `json:"entity_id"`
	Metadata  string    `gorm:"type:text" json:"metadata"`
	CreatedAt time.Time `gorm:"index:idx_audit_logs_company_created,priority:2,sort:desc" json:"created_at"`
}
