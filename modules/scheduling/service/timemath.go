package service

import (
	"fmt"
	"regexp"
	"strconv"
)

const minutesPerDay = 24 * 60

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// ClockTime is a parsed HH:MM value, comparable by TotalMinutes
type ClockTime struct {
	Hours        int
	Minutes      int
	TotalMinutes int
}

// ParseTime parses a 24-hour "HH:MM" string. Hours must be in [0,23] and
// minutes in [0,59].
func ParseTime(s string) (ClockTime, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return ClockTime{}, fmt.Errorf("invalid time format %q, expected HH:MM", s)
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])

	return ClockTime{
		Hours:        hours,
		Minutes:      minutes,
		TotalMinutes: hours*60 + minutes,
	}, nil
}

// FormatTime is the zero-padded inverse of ParseTime
func FormatTime(t ClockTime) string {
	return fmt.Sprintf("%02d:%02d", t.Hours, t.Minutes)
}

// TimeDifference returns the minutes from start to end. When end is earlier
// than start it is treated as next-day, so the result tolerates midnight
// wraparound even though slot generation never produces overnight spans.
func TimeDifference(start, end ClockTime) int {
	endTotal := end.TotalMinutes
	if endTotal < start.TotalMinutes {
		endTotal += minutesPerDay
	}
	return endTotal - start.TotalMinutes
}

// MinutesToTime normalizes a minute count into [0,1440) and formats it
func MinutesToTime(total int) string {
	total %= minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// AddMinutesToTime adds minutes to an "HH:MM" string, wrapping at midnight
func AddMinutesToTime(s string, minutes int) (string, error) {
	t, err := ParseTime(s)
	if err != nil {
		return "", err
	}
	return MinutesToTime(t.TotalMinutes + minutes), nil
}
