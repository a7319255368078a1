package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Availability represents one contiguous working-hours window for one staff
// member on one weekday (0=Sunday .. 6=Saturday). At most one window per
// (staff, weekday) pair is consulted when scheduling.
type Availability struct {
	ID        int64
	StaffID   int64
	DayOfWeek int // 0=Sunday .. 6=Saturday, matches time.Weekday
	StartTime types.TimeString
	EndTime   types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Contains reports whether the interval [start, end] fits inside the window.
func (a *Availability) Contains(start, end types.TimeString) bool {
	return !start.IsBefore(a.StartTime) && !end.IsAfter(a.EndTime)
}
