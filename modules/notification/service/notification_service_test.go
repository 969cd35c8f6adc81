package service

import (
	"testing"

	"interview-scheduler/modules/notification/entity"
	schedentity "interview-scheduler/modules/scheduling/entity"

	"github.com/stretchr/testify/assert"
)

func TestComposeScheduleNotice(t *testing.T) {
	scheduler := &schedentity.Scheduler{Title: "Backend Final Round"}

	title, message, notifType := composeScheduleNotice(scheduler, &schedentity.ScheduleResponse{
		Success: true,
		Message: "Interview scheduled with Dana on 2024-01-10 at 09:30",
	})
	assert.Equal(t, "Interview confirmed: Backend Final Round", title)
	assert.Equal(t, "Interview scheduled with Dana on 2024-01-10 at 09:30", message)
	assert.Equal(t, entity.TypeScheduleConfirmed, notifType)

	title, message, notifType = composeScheduleNotice(scheduler, &schedentity.ScheduleResponse{
		Success: false,
		Message: "No overlapping availability found between the candidate and any interviewer. Please request additional availability.",
	})
	assert.Equal(t, "Scheduling needs attention: Backend Final Round", title)
	assert.Contains(t, message, "additional availability")
	assert.Equal(t, entity.TypeScheduleFailed, notifType)
}
