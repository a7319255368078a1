package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func TestClassifyShift(t *testing.T) {
	tests := []struct {
		name string
		time types.TimeString
		want Shift
	}{
		{"morning lower bound", "06:00", ShiftMorning},
		{"mid morning", "09:30", ShiftMorning},
		{"morning upper edge", "11:59", ShiftMorning},
		{"afternoon lower bound", "12:00", ShiftAfternoon},
		{"mid afternoon", "15:45", ShiftAfternoon},
		{"afternoon upper edge", "17:59", ShiftAfternoon},
		{"evening lower bound", "18:00", ShiftEvening},
		{"late evening", "21:30", ShiftEvening},
		{"hour 22 is still evening", "22:00", ShiftEvening},
		{"hour 22 with minutes is still evening", "22:45", ShiftEvening},
		{"23:00 is out of shift", "23:00", ShiftOutOfShift},
		{"midnight is out of shift", "00:00", ShiftOutOfShift},
		{"early morning is out of shift", "05:59", ShiftOutOfShift},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyShift(tt.time))
		})
	}
}
