package booking

import (
	"strings"
	"unicode/utf8"

	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
)

// Request statuses are an open set. These are the values the front-end uses by
// convention; any other short label is accepted as well.
const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusRejected  = "rejected"
	StatusCompleted = "completed"
)

const maxStatusLen = 30

func InitialStatus() string {
	return StatusPending
}

// NormalizeStatus trims and lower-cases s. An empty result is an error.
func NormalizeStatus(s string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return "", httperr.New(httperr.KindValidation, "missing_status", "Request status is required.")
	}
	if utf8.RuneCountInString(v) > maxStatusLen {
		return "", httperr.New(httperr.KindValidation, "invalid_status", "Request status is too long.")
	}
	return v, nil
}

func IsConventional(status string) bool {
	switch status {
	case StatusPending, StatusAccepted, StatusRejected, StatusCompleted:
		return true
	}
	return false
}
