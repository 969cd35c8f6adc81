package service

import (
	"sort"

	"interview-scheduler/modules/scheduling/entity"
)

const maxOffsetStep = 15 // minutes between candidate start offsets

// overlapWindow computes the intersection of two same-date windows. The
// boolean is false when the windows do not share any time.
func overlapWindow(a, b entity.TimeSlot) (start, end ClockTime, ok bool) {
	start1, err := ParseTime(a.StartTime)
	if err != nil {
		return ClockTime{}, ClockTime{}, false
	}
	end1, err := ParseTime(a.EndTime)
	if err != nil {
		return ClockTime{}, ClockTime{}, false
	}
	start2, err := ParseTime(b.StartTime)
	if err != nil {
		return ClockTime{}, ClockTime{}, false
	}
	end2, err := ParseTime(b.EndTime)
	if err != nil {
		return ClockTime{}, ClockTime{}, false
	}

	start = start1
	if start2.TotalMinutes > start.TotalMinutes {
		start = start2
	}
	end = end1
	if end2.TotalMinutes < end.TotalMinutes {
		end = end2
	}

	if end.TotalMinutes <= start.TotalMinutes {
		return ClockTime{}, ClockTime{}, false
	}
	return start, end, true
}

// findOverlapSlots enumerates feasible interview slots inside the
// intersection of an interviewer window and a candidate window sharing the
// same date. Every returned slot has exactly requiredDuration minutes and
// fits entirely inside the intersection; the result is non-empty whenever the
// intersection is at least requiredDuration long.
func findOverlapSlots(interviewer, candidate entity.TimeSlot, requiredDuration int) []entity.TimeSlot {
	overlapStart, overlapEnd, ok := overlapWindow(interviewer, candidate)
	if !ok {
		return nil
	}

	overlapDuration := TimeDifference(overlapStart, overlapEnd)
	if overlapDuration < requiredDuration {
		// not enough shared time
		return nil
	}

	// Slack for positioning the interview inside the intersection
	availableDuration := overlapDuration - requiredDuration

	step := availableDuration / 4
	if step < 1 {
		step = 1
	}
	if step > maxOffsetStep {
		step = maxOffsetStep
	}

	var slots []entity.TimeSlot
	for offset := 0; offset <= availableDuration; offset += step {
		slotStart := overlapStart.TotalMinutes + offset
		slotEnd := slotStart + requiredDuration
		if slotEnd > overlapEnd.TotalMinutes {
			continue
		}
		slots = append(slots, entity.TimeSlot{
			Date:      interviewer.Date,
			StartTime: MinutesToTime(slotStart),
			EndTime:   MinutesToTime(slotEnd),
		})
	}

	// Exact-fit / degenerate case: always offer the front of the intersection
	if len(slots) == 0 {
		slots = append(slots, entity.TimeSlot{
			Date:      interviewer.Date,
			StartTime: FormatTime(overlapStart),
			EndTime:   MinutesToTime(overlapStart.TotalMinutes + requiredDuration),
		})
	}

	return slots
}

// scoreSlots ranks feasible slots of the same intersection by how pleasant
// the start time reads. Scoring never affects feasibility; ties keep
// generation order, so the sort must be stable.
func scoreSlots(slots []entity.TimeSlot, hours entity.BusinessHours) []entity.TimeSlotMatch {
	matches := make([]entity.TimeSlotMatch, 0, len(slots))

	for _, slot := range slots {
		start, err := ParseTime(slot.StartTime)
		if err != nil {
			continue
		}

		score := 100
		var reasons []string

		switch {
		case start.Minutes == 0:
			score += 20
			reasons = append(reasons, "starts on the hour")
		case start.Minutes%30 == 0:
			score += 15
			reasons = append(reasons, "starts on the half-hour")
		case start.Minutes%15 == 0:
			score += 10
			reasons = append(reasons, "starts on a quarter-hour")
		case start.Minutes%5 == 0:
			score += 5
			reasons = append(reasons, "starts on a five-minute boundary")
		}

		if start.Hours >= hours.Start && start.Hours <= hours.End {
			score += 10
			reasons = append(reasons, "within business hours")
		}

		matches = append(matches, entity.TimeSlotMatch{
			Date:      slot.Date,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Duration:  durationOf(slot),
			Score:     score,
			Reasons:   reasons,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}

func durationOf(slot entity.TimeSlot) int {
	start, err := ParseTime(slot.StartTime)
	if err != nil {
		return 0
	}
	end, err := ParseTime(slot.EndTime)
	if err != nil {
		return 0
	}
	return TimeDifference(start, end)
}
