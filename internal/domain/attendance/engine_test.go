package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, s string) TimeOfDay {
	t.Helper()
	tod, err := ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func officeRule(t *testing.T) Rule {
	t.Helper()
	return Rule{
		StartTime: mustTime(t, "08:00"),
		EndTime:   mustTime(t, "17:00"),
		OffDay:    time.Sunday,
		LateTime:  mustTime(t, "08:00"),
		HalfLeave: mustTime(t, "13:00"),
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("08:05:30")
	require.NoError(t, err)
	assert.Equal(t, "08:05:30", tod.String())

	tod, err = ParseTimeOfDay("08:05")
	require.NoError(t, err)
	assert.Equal(t, "08:05:00", tod.String())

	_, err = ParseTimeOfDay("late o'clock")
	assert.Error(t, err)
}

func TestOpeningStatus(t *testing.T) {
	rule := officeRule(t)

	tests := []struct {
		name    string
		clockIn string
		want    Status
	}{
		{"before threshold", "07:59:59", StatusPresent},
		{"exactly at threshold", "08:00:00", StatusLate},
		{"after threshold", "08:05:00", StatusLate},
		{"well before threshold", "06:30:00", StatusPresent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OpeningStatus(mustTime(t, tt.clockIn), rule)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClosingStatus(t *testing.T) {
	rule := officeRule(t)

	tests := []struct {
		name     string
		opening  Status
		clockIn  string
		clockOut string
		want     Status
	}{
		{"thirty seconds is absent", StatusLate, "08:05:00", "08:05:30", StatusAbsent},
		{"zero duration is absent", StatusPresent, "08:00:00", "08:00:00", StatusAbsent},
		{"thirty five minutes is short leave", StatusLate, "08:05:00", "08:40:00", StatusShortLeave},
		{"exactly two hours is short leave", StatusPresent, "08:00:00", "10:00:00", StatusShortLeave},
		{"left before half-leave counts present", StatusLate, "08:05:00", "12:00:00", StatusPresent},
		{"full day keeps late opening", StatusLate, "08:05:00", "17:00:00", StatusLate},
		{"full day keeps present opening", StatusPresent, "07:55:00", "17:00:00", StatusPresent},
		{"departure at half-leave keeps opening", StatusLate, "08:05:00", "13:00:00", StatusLate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := ClosingStatus(tt.opening, mustTime(t, tt.clockIn), mustTime(t, tt.clockOut), rule)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClosingStatusRejectsBackwardsClock(t *testing.T) {
	rule := officeRule(t)
	_, _, err := ClosingStatus(StatusPresent, mustTime(t, "09:00"), mustTime(t, "08:00"), rule)
	assert.ErrorIs(t, err, ErrClockOutBeforeClockIn)
}

func TestClosingStatusDuration(t *testing.T) {
	rule := officeRule(t)
	_, dur, err := ClosingStatus(StatusPresent, mustTime(t, "08:00"), mustTime(t, "16:30"), rule)
	require.NoError(t, err)
	assert.Equal(t, 8*time.Hour+30*time.Minute, dur)
}

func TestIsOffDay(t *testing.T) {
	rule := officeRule(t)
	sunday := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	assert.True(t, IsOffDay(sunday, rule))
	assert.False(t, IsOffDay(monday, rule))
}

func TestRuleValidate(t *testing.T) {
	rule := officeRule(t)
	assert.NoError(t, rule.Validate())

	bad := rule
	bad.LateTime = mustTime(t, "18:00")
	assert.ErrorIs(t, bad.Validate(), ErrRuleOutsideOfficeHours)

	bad = rule
	bad.HalfLeave = mustTime(t, "07:00")
	assert.ErrorIs(t, bad.Validate(), ErrRuleOutsideOfficeHours)

	bad = rule
	bad.EndTime = mustTime(t, "07:00")
	assert.ErrorIs(t, bad.Validate(), ErrRuleOutsideOfficeHours)
}
