package service

import (
	"fmt"
	"regexp"

	"interview-scheduler/modules/scheduling/entity"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateAvailability runs the structural checks on a set of submissions and
// returns every violation found, not just the first. The matching engine does
// not re-validate; callers are expected to reject invalid input here before
// invoking it.
func ValidateAvailability(avails []entity.Availability) entity.ValidationResult {
	if len(avails) == 0 {
		return entity.ValidationResult{
			Valid:  false,
			Errors: []string{"No availability provided"},
		}
	}

	var violations []string

	for i, avail := range avails {
		owner := avail.UserID
		if owner == "" {
			owner = fmt.Sprintf("submission %d", i+1)
		}

		if len(avail.TimeSlots) == 0 {
			violations = append(violations, fmt.Sprintf("availability for %s has no time slots", owner))
			continue
		}

		for j, slot := range avail.TimeSlots {
			ref := fmt.Sprintf("slot %d for %s", j+1, owner)

			if !datePattern.MatchString(slot.Date) {
				violations = append(violations, fmt.Sprintf("%s: invalid date %q, expected YYYY-MM-DD", ref, slot.Date))
			}

			start, startErr := ParseTime(slot.StartTime)
			if startErr != nil {
				violations = append(violations, fmt.Sprintf("%s: invalid start time %q, expected HH:MM", ref, slot.StartTime))
			}
			end, endErr := ParseTime(slot.EndTime)
			if endErr != nil {
				violations = append(violations, fmt.Sprintf("%s: invalid end time %q, expected HH:MM", ref, slot.EndTime))
			}

			if startErr == nil && endErr == nil && start.TotalMinutes >= end.TotalMinutes {
				violations = append(violations, fmt.Sprintf("%s: start time %s must be before end time %s", ref, slot.StartTime, slot.EndTime))
			}
		}
	}

	return entity.ValidationResult{
		Valid:  len(violations) == 0,
		Errors: violations,
	}
}
