package timezone

import (
	"time"
	_ "time/tzdata"
)

const (
	DefaultTimezone = "America/Sao_Paulo"

	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolves tz, falling back to DefaultTimezone for empty or unknown names.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ParseDateTime reads a calendar day (YYYY-MM-DD) and a wall clock (HH:MM) as one
// instant in tz.
func ParseDateTime(tz, day, clock string) (time.Time, error) {
	return time.ParseInLocation(
		DateLayout+" "+ClockLayout,
		day+" "+clock,
		Location(tz),
	)
}
