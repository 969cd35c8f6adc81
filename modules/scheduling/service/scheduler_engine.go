package service

import (
	"fmt"
	"time"

	"interview-scheduler/core/constants"
	"interview-scheduler/core/logger"
	"interview-scheduler/modules/scheduling/entity"
)

const (
	msgNoOverlap       = "No overlapping availability found between the candidate and any interviewer. Please request additional availability."
	msgInternalFailure = "Failed to generate schedule due to an internal error"
)

// ScheduleEngine reconciles candidate and interviewer availability into
// concrete, non-conflicting interview slots. Each invocation is a pure
// computation over the supplied request; the engine holds no mutable state
// across runs.
type ScheduleEngine struct {
	defaultOptions entity.SchedulingOptions
	tz             TimezoneConverter
	now            func() time.Time
}

func NewScheduleEngine(tz TimezoneConverter) *ScheduleEngine {
	return &ScheduleEngine{
		defaultOptions: DefaultSchedulingOptions(),
		tz:             tz,
		now:            time.Now,
	}
}

// DefaultSchedulingOptions returns the per-invocation defaults; callers
// override individual fields via the options argument of FindOptimalSchedule.
func DefaultSchedulingOptions() entity.SchedulingOptions {
	return entity.SchedulingOptions{
		Duration:   constants.DefaultInterviewDuration,
		BufferTime: constants.DefaultBufferTime,
		BusinessHours: entity.BusinessHours{
			Start: constants.DefaultBusinessHoursStart,
			End:   constants.DefaultBusinessHoursEnd,
		},
		MaxSuggestions: constants.DefaultMaxSuggestions,
	}
}

// interviewerGroup keeps one interviewer's submissions together while
// preserving the order interviewers were first encountered in the request.
// That encounter order drives the output ordering and must not be handed to
// an unordered map.
type interviewerGroup struct {
	ID     string
	Avails []entity.Availability
}

func groupByInterviewer(avails []entity.Availability) []interviewerGroup {
	groups := make([]interviewerGroup, 0, len(avails))
	index := make(map[string]int, len(avails))

	for _, a := range avails {
		if i, ok := index[a.UserID]; ok {
			groups[i].Avails = append(groups[i].Avails, a)
			continue
		}
		index[a.UserID] = len(groups)
		groups = append(groups, interviewerGroup{ID: a.UserID, Avails: []entity.Availability{a}})
	}

	return groups
}

// FindOptimalSchedule is the engine entry point. Infeasibility is a normal
// outcome, not an error; unexpected internal failures are downgraded to a
// generic failure response so the engine never crashes its caller.
func (e *ScheduleEngine) FindOptimalSchedule(req *entity.ScheduleRequest, opts *entity.SchedulingOptions) (resp *entity.ScheduleResponse) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("ScheduleEngine:FindOptimalSchedule:Recovered", "panic", fmt.Sprint(r), "scheduler_id", req.SchedulerID)
			resp = &entity.ScheduleResponse{
				Success: false,
				Message: msgInternalFailure,
			}
		}
	}()

	options := e.resolveOptions(req, opts)
	assigned := e.assignInterviewers(req, options)
	return e.buildResponse(req, assigned, options)
}

// resolveOptions merges per-field overrides onto the defaults. The request's
// interview_duration wins over both when set.
func (e *ScheduleEngine) resolveOptions(req *entity.ScheduleRequest, opts *entity.SchedulingOptions) entity.SchedulingOptions {
	options := e.defaultOptions

	if opts != nil {
		if opts.Duration > 0 {
			options.Duration = opts.Duration
		}
		if opts.BufferTime > 0 {
			options.BufferTime = opts.BufferTime
		}
		if opts.BusinessHours.Start != 0 || opts.BusinessHours.End != 0 {
			options.BusinessHours = opts.BusinessHours
		}
		if len(opts.PreferredDays) > 0 {
			options.PreferredDays = opts.PreferredDays
		}
		if opts.MaxSuggestions > 0 {
			options.MaxSuggestions = opts.MaxSuggestions
		}
		options.PreferNiceTimes = opts.PreferNiceTimes
	}

	if req.InterviewDuration > 0 {
		options.Duration = req.InterviewDuration
	}

	return options
}

// assignInterviewers runs the two-pass greedy sweep. Pass 1 walks
// interviewers in encounter order and commits the first feasible slot that
// clears every already-committed session by the buffer. Pass 2 retries only
// the interviewers pass 1 left unscheduled, against the larger committed set.
// Interviewers still unscheduled after pass 2 are silently omitted.
func (e *ScheduleEngine) assignInterviewers(req *entity.ScheduleRequest, options entity.SchedulingOptions) []entity.TimeSlotMatch {
	groups := groupByInterviewer(req.InterviewerAvailability)

	var assigned []entity.TimeSlotMatch
	var unscheduled []interviewerGroup

	for _, group := range groups {
		candidates := e.candidateSlots(group, req.CandidateAvailability, options)
		if match, ok := acceptFirstFeasible(candidates, assigned, options.BufferTime); ok {
			assigned = append(assigned, match)
		} else {
			unscheduled = append(unscheduled, group)
		}
	}

	// Rescue pass, same conflict test, same encounter order
	for _, group := range unscheduled {
		candidates := e.candidateSlots(group, req.CandidateAvailability, options)
		if match, ok := acceptFirstFeasible(candidates, assigned, options.BufferTime); ok {
			assigned = append(assigned, match)
		}
	}

	return assigned
}

// candidateSlots produces the flat ordered candidate list for one
// interviewer: submissions in order, each submission's windows in order,
// candidate windows sharing the date in order, generated offsets in order.
// First-fit semantics rule; scoring reorders only within a window pair, and
// only when PreferNiceTimes is set.
func (e *ScheduleEngine) candidateSlots(group interviewerGroup, candidateAvails []entity.Availability, options entity.SchedulingOptions) []entity.TimeSlotMatch {
	var out []entity.TimeSlotMatch

	for _, avail := range group.Avails {
		for _, window := range avail.TimeSlots {
			for _, candidateAvail := range candidateAvails {
				for _, candidateWindow := range candidateAvail.TimeSlots {
					if candidateWindow.Date != window.Date {
						continue
					}

					slots := findOverlapSlots(window, candidateWindow, options.Duration)
					if len(slots) == 0 {
						continue
					}

					if options.PreferNiceTimes {
						out = append(out, scoreSlots(slots, options.BusinessHours)...)
						continue
					}

					for _, slot := range slots {
						out = append(out, entity.TimeSlotMatch{
							Date:      slot.Date,
							StartTime: slot.StartTime,
							EndTime:   slot.EndTime,
							Duration:  options.Duration,
							Score:     100,
						})
					}
				}
			}
		}
	}

	for i := range out {
		out[i].InterviewerID = group.ID
	}

	return out
}

// acceptFirstFeasible scans the candidate list in order and accepts the first
// slot that does not conflict with any committed session.
func acceptFirstFeasible(candidates, assigned []entity.TimeSlotMatch, buffer int) (entity.TimeSlotMatch, bool) {
	for _, candidate := range candidates {
		if !conflictsWithAssigned(candidate, assigned, buffer) {
			return candidate, true
		}
	}
	return entity.TimeSlotMatch{}, false
}

// conflictsWithAssigned applies the buffer-asymmetric conflict test: a
// proposed interval conflicts with an existing one on the same date iff
// proposedStart < existingEnd+buffer and proposedEnd > existingStart. Only
// the existing interval's end is extended by the buffer; both passes use the
// identical test.
func conflictsWithAssigned(candidate entity.TimeSlotMatch, assigned []entity.TimeSlotMatch, buffer int) bool {
	s1, err := ParseTime(candidate.StartTime)
	if err != nil {
		return true
	}
	e1, err := ParseTime(candidate.EndTime)
	if err != nil {
		return true
	}

	for _, existing := range assigned {
		if existing.Date != candidate.Date {
			continue
		}
		s2, err := ParseTime(existing.StartTime)
		if err != nil {
			continue
		}
		e2, err := ParseTime(existing.EndTime)
		if err != nil {
			continue
		}
		if s1.TotalMinutes < e2.TotalMinutes+buffer && e1.TotalMinutes > s2.TotalMinutes {
			return true
		}
	}

	return false
}
