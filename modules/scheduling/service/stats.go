package service

import "interview-scheduler/modules/scheduling/entity"

// GetSchedulingStats reports raw overlap capacity between the candidate's and
// an interviewer's submissions: slot counts per side, how many calendar dates
// appear on both sides, and the summed length of every pairwise intersection.
// It deliberately ignores buffers and conflicts; this is capacity before
// assignment, not after.
func GetSchedulingStats(candidate, interviewer []entity.Availability) entity.SchedulingStats {
	stats := entity.SchedulingStats{}

	candidateDates := make(map[string]bool)
	for _, avail := range candidate {
		stats.TotalCandidateSlots += len(avail.TimeSlots)
		for _, slot := range avail.TimeSlots {
			candidateDates[slot.Date] = true
		}
	}

	sharedDates := make(map[string]bool)
	for _, avail := range interviewer {
		stats.TotalInterviewerSlots += len(avail.TimeSlots)
		for _, slot := range avail.TimeSlots {
			if candidateDates[slot.Date] {
				sharedDates[slot.Date] = true
			}
		}
	}
	stats.OverlappingDays = len(sharedDates)

	totalMinutes := 0
	for _, iAvail := range interviewer {
		for _, iSlot := range iAvail.TimeSlots {
			for _, cAvail := range candidate {
				for _, cSlot := range cAvail.TimeSlots {
					if cSlot.Date != iSlot.Date {
						continue
					}
					start, end, ok := overlapWindow(iSlot, cSlot)
					if !ok {
						continue
					}
					totalMinutes += TimeDifference(start, end)
				}
			}
		}
	}
	stats.TotalOverlappingHours = float64(totalMinutes) / 60.0

	return stats
}
