// Package domain holds the error values shared by the marketplace's repository contracts.
package domain

import (
	"strings"

	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
)

// NotFound is returned by every repository get-by-id for a missing row.
func NotFound(entity string) error {
	return NotFoundErr(entity, nil)
}

func NotFoundErr(entity string, cause error) error {
	return httperr.Wrap(
		httperr.KindNotFound,
		strings.ReplaceAll(entity, " ", "_")+"_not_found",
		strings.ToUpper(entity[:1])+entity[1:]+" not found.",
		cause,
	)
}

// EmailTaken is the conflict raised by the unique index on users.email.
func EmailTaken(cause error) error {
	return httperr.Wrap(httperr.KindConflict, "user_email_taken", "User with this email already exists.", cause)
}

func Conflict(entity string, cause error) error {
	return httperr.Wrap(
		httperr.KindConflict,
		strings.ReplaceAll(entity, " ", "_")+"_conflict",
		strings.ToUpper(entity[:1])+entity[1:]+" conflicts with an existing record.",
		cause,
	)
}

// Storage wraps an unclassified persistence failure, keeping its text as detail.
func Storage(op string, cause error) error {
	return httperr.Wrap(httperr.KindInternal, op+"_failed", "Storage operation failed.", cause)
}
