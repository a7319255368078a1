package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func TestAppointmentCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from AppointmentStatus
		to   AppointmentStatus
		want bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to completed is forbidden", StatusPending, StatusCompleted, false},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed back to pending is forbidden", StatusConfirmed, StatusPending, false},
		{"completed is terminal", StatusCompleted, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusPending, false},
		{"cancelled to confirmed is forbidden", StatusCancelled, StatusConfirmed, false},
		{"no self transition", StatusPending, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appt := &Appointment{Status: tt.from}
			assert.Equal(t, tt.want, appt.CanTransitionTo(tt.to))
		})
	}
}

func TestAppointmentIsTerminal(t *testing.T) {
	assert.False(t, (&Appointment{Status: StatusPending}).IsTerminal())
	assert.False(t, (&Appointment{Status: StatusConfirmed}).IsTerminal())
	assert.True(t, (&Appointment{Status: StatusCompleted}).IsTerminal())
	assert.True(t, (&Appointment{Status: StatusCancelled}).IsTerminal())
}

func TestAppointmentOverlaps(t *testing.T) {
	appt := &Appointment{StartTime: "10:00", EndTime: "10:30"}

	tests := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{"identical interval", "10:00", "10:30", true},
		{"starts inside", "10:15", "10:45", true},
		{"ends inside", "09:45", "10:15", true},
		{"covers entirely", "09:00", "11:00", true},
		{"back to back after is allowed", "10:30", "11:00", false},
		{"back to back before is allowed", "09:30", "10:00", false},
		{"disjoint after", "11:00", "11:30", false},
		{"disjoint before", "08:00", "09:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := appt.Overlaps(types.TimeString(tt.start), types.TimeString(tt.end))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAvailabilityContains(t *testing.T) {
	av := &Availability{StartTime: "08:00", EndTime: "16:00"}

	assert.True(t, av.Contains("08:00", "08:30"))
	assert.True(t, av.Contains("15:30", "16:00"))
	assert.True(t, av.Contains("10:00", "12:00"))
	assert.False(t, av.Contains("07:30", "08:30"))
	assert.False(t, av.Contains("15:45", "16:15"))
	assert.False(t, av.Contains("16:00", "17:00"))
}
