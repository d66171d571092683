package catalog

import (
	"math"

	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
)

// ValidateOffer checks the numeric fields of a service listing.
func ValidateOffer(price float64, duration int) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return httperr.New(httperr.KindValidation, "invalid_price", "Price must be zero or positive.")
	}
	if duration <= 0 {
		return httperr.New(httperr.KindValidation, "invalid_duration", "Duration must be a positive number of minutes.")
	}
	return nil
}
