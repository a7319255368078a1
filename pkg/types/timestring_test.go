package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{"plain HH:MM", "09:00", "09:00", false},
		{"HH:MM:SS truncates seconds", "09:00:45", "09:00", false},
		{"trims whitespace", " 18:30 ", "18:30", false},
		{"midnight", "00:00", "00:00", false},
		{"last minute of day", "23:59", "23:59", false},
		{"hour out of range", "24:00", "", true},
		{"minutes out of range", "10:60", "", true},
		{"garbage", "not-a-time", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 10, 15, 14, 5, 33, 0, time.UTC)
	assert.Equal(t, TimeString("14:05"), NewTimeString(moment))
}

func TestTimeStringAddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
		wantErr bool
	}{
		{"simple shift", "09:00", 30, "09:30", false},
		{"crosses hour boundary", "09:45", 30, "10:15", false},
		{"zero minutes", "12:00", 0, "12:00", false},
		{"negative shift", "10:00", -15, "09:45", false},
		{"lands on last minute", "23:00", 59, "23:59", false},
		{"crosses midnight forward", "23:30", 45, "", true},
		{"exactly midnight is out of range", "23:00", 60, "", true},
		{"crosses midnight backward", "00:10", -20, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeStringComparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("18:30").IsAfter("09:15"))
	assert.False(t, TimeString("09:15").IsAfter("09:15"))
}

func TestTimeStringHourMinute(t *testing.T) {
	ts := TimeString("18:45")
	assert.Equal(t, 18, ts.Hour())
	assert.Equal(t, 45, ts.Minute())

	total, err := ts.TotalMinutes()
	require.NoError(t, err)
	assert.Equal(t, 18*60+45, total)
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan([]byte("16:30")))
	assert.Equal(t, TimeString("16:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 1, 1, 7, 20, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("07:20"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeStringValue(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("bad").Value()
	assert.Error(t, err)
}
