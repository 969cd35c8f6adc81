package service

import "time"

// TimezoneConverter turns a local date and clock time in a named zone into an
// absolute instant, and back. The engine treats it as a black box so that
// zone database behavior stays outside the matching logic.
type TimezoneConverter interface {
	LocalToInstant(date, clock, timezone string) (time.Time, error)
	InstantToLocal(t time.Time, timezone string) (time.Time, error)
}

type locationConverter struct{}

// NewTimezoneConverter returns a converter backed by the IANA zone database
func NewTimezoneConverter() TimezoneConverter {
	return locationConverter{}
}

func (locationConverter) LocalToInstant(date, clock, timezone string) (time.Time, error) {
	loc := time.UTC
	if timezone != "" {
		l, err := time.LoadLocation(timezone)
		if err != nil {
			return time.Time{}, err
		}
		loc = l
	}

	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, loc)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func (locationConverter) InstantToLocal(t time.Time, timezone string) (time.Time, error) {
	loc := time.UTC
	if timezone != "" {
		l, err := time.LoadLocation(timezone)
		if err != nil {
			return time.Time{}, err
		}
		loc = l
	}
	return t.In(loc), nil
}
