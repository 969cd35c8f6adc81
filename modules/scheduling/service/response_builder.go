package service

import (
	"fmt"
	"time"

	"interview-scheduler/core/logger"
	"interview-scheduler/modules/scheduling/entity"
)

// buildResponse turns the assignment list into the structured report handed
// back to callers. The primary result is the first assigned interview in
// output order.
func (e *ScheduleEngine) buildResponse(req *entity.ScheduleRequest, assigned []entity.TimeSlotMatch, options entity.SchedulingOptions) *entity.ScheduleResponse {
	summary := e.buildSummary(req)

	if len(assigned) == 0 {
		return &entity.ScheduleResponse{
			Success:             false,
			Message:             msgNoOverlap,
			AvailabilitySummary: summary,
		}
	}

	primary := assigned[0]
	scheduledTime := e.instantFor(primary, req.Timezone)

	var suggested []string
	maxAlternates := options.MaxSuggestions - 1
	for _, match := range assigned[1:] {
		if len(suggested) >= maxAlternates {
			break
		}
		suggested = append(suggested, e.instantFor(match, req.Timezone))
	}

	interviews := make([]entity.InterviewAssignment, 0, len(assigned))
	allSlots := make([]entity.TimeSlotMatch, 0, len(assigned))
	for _, match := range assigned {
		name := e.displayName(req, match.InterviewerID)
		match.InterviewerName = name
		allSlots = append(allSlots, match)
		interviews = append(interviews, entity.InterviewAssignment{
			InterviewerID:   match.InterviewerID,
			InterviewerName: name,
			Date:            match.Date,
			StartTime:       match.StartTime,
			EndTime:         match.EndTime,
			ScheduledTime:   e.instantFor(match, req.Timezone),
		})
	}

	return &entity.ScheduleResponse{
		Success:              true,
		ScheduledTime:        scheduledTime,
		Message:              scheduleMessage(interviews, options.BufferTime),
		SuggestedTimes:       suggested,
		AllAvailableSlots:    allSlots,
		AvailabilitySummary:  summary,
		IndividualInterviews: interviews,
	}
}

// instantFor combines a match's date and start time and converts them from
// the request timezone to an absolute instant. A match without a date should
// not occur on valid input; substituting the current day keeps one bad slot
// from failing the whole run.
func (e *ScheduleEngine) instantFor(match entity.TimeSlotMatch, timezone string) string {
	date := match.Date
	if date == "" {
		date = e.now().Format("2006-01-02")
		logger.Warn("ScheduleEngine:instantFor:MissingDate", "interviewer_id", match.InterviewerID, "fallback_date", date)
	}

	instant, err := e.tz.LocalToInstant(date, match.StartTime, timezone)
	if err != nil {
		logger.Error("ScheduleEngine:instantFor:ConversionFailed", "error", err, "date", date, "time", match.StartTime, "timezone", timezone)
		panic(fmt.Sprintf("timezone conversion failed: %v", err))
	}
	return instant.Format(time.RFC3339)
}

func (e *ScheduleEngine) displayName(req *entity.ScheduleRequest, interviewerID string) string {
	if user, ok := req.Users[interviewerID]; ok && user.Name != "" {
		return user.Name
	}

	prefix := interviewerID
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	return "Interviewer " + prefix
}

func scheduleMessage(interviews []entity.InterviewAssignment, buffer int) string {
	if len(interviews) == 1 {
		iv := interviews[0]
		return fmt.Sprintf("Interview scheduled with %s on %s at %s", iv.InterviewerName, iv.Date, iv.StartTime)
	}
	return fmt.Sprintf("Scheduled %d interviews with at least %d minutes between sessions", len(interviews), buffer)
}

// buildSummary produces the date-bucketed listing of both sides' submissions
// plus the list of dates that appear on both sides. Buckets keep the order
// dates were first seen in the submissions.
func (e *ScheduleEngine) buildSummary(req *entity.ScheduleRequest) *entity.AvailabilitySummary {
	candidate := bucketByDate(req.CandidateAvailability)
	interviewer := bucketByDate(req.InterviewerAvailability)

	interviewerDates := make(map[string]bool, len(interviewer))
	for _, bucket := range interviewer {
		interviewerDates[bucket.Date] = true
	}

	var overlapping []string
	for _, bucket := range candidate {
		if interviewerDates[bucket.Date] {
			overlapping = append(overlapping, bucket.Date)
		}
	}

	return &entity.AvailabilitySummary{
		CandidateSlots:   candidate,
		InterviewerSlots: interviewer,
		OverlappingDays:  overlapping,
	}
}

func bucketByDate(avails []entity.Availability) []entity.DateSlots {
	var buckets []entity.DateSlots
	index := make(map[string]int)

	for _, avail := range avails {
		for _, slot := range avail.TimeSlots {
			i, ok := index[slot.Date]
			if !ok {
				i = len(buckets)
				index[slot.Date] = i
				buckets = append(buckets, entity.DateSlots{Date: slot.Date})
			}
			buckets[i].Slots = append(buckets[i].Slots, slot.StartTime+" - "+slot.EndTime)
		}
	}

	return buckets
}
