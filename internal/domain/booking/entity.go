package booking

import (
	"strings"

	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
	"github.com/BruksfildServices01/service-marketplace/internal/timezone"
)

// ===============================
// Domain Actions
// ===============================

// NewBooking validates the slot and resolves it to an instant in tz.
func NewBooking(tz string, serviceID, userID uint, day, clock string) (*models.Booking, error) {
	day = strings.TrimSpace(day)
	clock = strings.TrimSpace(clock)

	startsAt, err := timezone.ParseDateTime(tz, day, clock)
	if err != nil {
		return nil, httperr.New(httperr.KindValidation, "invalid_date_or_time", "Booking date must be YYYY-MM-DD and time HH:MM.")
	}

	return &models.Booking{
		ServicesID:    serviceID,
		UsersID:       userID,
		StartDayDate:  day,
		StartTimeDate: clock,
		StartsAt:      startsAt,
	}, nil
}

// NewRequest opens a request on bookingID. An empty status starts it as pending.
func NewRequest(bookingID uint, status, comment string) (*models.Request, error) {
	if strings.TrimSpace(status) == "" {
		status = InitialStatus()
	}
	st, err := NormalizeStatus(status)
	if err != nil {
		return nil, err
	}

	return &models.Request{
		BookingsID: bookingID,
		Status:     st,
		Comment:    strings.TrimSpace(comment),
	}, nil
}

// Replace overwrites status and comment wholesale; the previous values are not kept.
func Replace(r *models.Request, status, comment string) error {
	st, err := NormalizeStatus(status)
	if err != nil {
		return err
	}

	r.Status = st
	r.Comment = strings.TrimSpace(comment)
	return nil
}
