package validators

import (
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/service-marketplace/internal/domain/access"
)

// RegisterRole adds the "role" tag, which accepts client, company or admin in
// any letter case.
func RegisterRole(v *validator.Validate) error {
	return v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		_, err := access.ParseRole(fl.Field().String())
		return err == nil
	})
}
