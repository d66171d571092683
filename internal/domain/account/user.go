package account

import (
	"strings"
	"unicode/utf8"

	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
)

const (
	maxNameLen  = 120
	maxImageLen = 75
)

// NormalizeEmail is applied before every insert and lookup so the unique index
// is effectively case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidateName(field, name string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	if n == 0 || n > maxNameLen {
		return httperr.New(httperr.KindValidation, "invalid_"+field, "Field "+field+" must have 1 to 120 characters.")
	}
	return nil
}

// NormalizeImage trims ref and maps an empty reference to nil.
func NormalizeImage(ref *string) (*string, error) {
	if ref == nil {
		return nil, nil
	}
	v := strings.TrimSpace(*ref)
	if v == "" {
		return nil, nil
	}
	if len(v) > maxImageLen {
		return nil, httperr.New(httperr.KindValidation, "invalid_image", "Image reference is too long.")
	}
	return &v, nil
}
