package attendance

import (
	"time"
)

const (
	// Clock-outs under a minute never count as a working day.
	absentCutoff = time.Minute
	// Up to two hours on site counts as a short leave, not a day.
	shortLeaveCutoff = 2 * time.Hour
)

// OpeningStatus classifies a clock-in against the rule's late threshold.
// Arriving at or after the threshold is Late.
func OpeningStatus(clockIn TimeOfDay, rule Rule) Status {
	if clockIn.Before(rule.LateTime) {
		return StatusPresent
	}
	return StatusLate
}

// ClosingStatus finalizes a record on clock-out and returns the worked
// duration. The opening status survives only a departure at or past the
// half-leave threshold; earlier departures are reclassified.
func ClosingStatus(opening Status, clockIn, clockOut TimeOfDay, rule Rule) (Status, time.Duration, error) {
	if clockOut.Before(clockIn) {
		return "", 0, ErrClockOutBeforeClockIn
	}

	duration := clockOut.Sub(clockIn)
	switch {
	case duration < absentCutoff:
		return StatusAbsent, duration, nil
	case duration <= shortLeaveCutoff:
		return StatusShortLeave, duration, nil
	case clockOut.Before(rule.HalfLeave):
		return StatusPresent, duration, nil
	default:
		return opening, duration, nil
	}
}

// IsOffDay reports whether date falls on the rule's weekly off-day.
func IsOffDay(date time.Time, rule Rule) bool {
	return date.Weekday() == rule.OffDay
}

// Validate checks that the thresholds lie within office hours.
func (r Rule) Validate() error {
	if r.EndTime.Before(r.StartTime) {
		return ErrRuleOutsideOfficeHours
	}
	if r.LateTime.Before(r.StartTime) || r.LateTime.After(r.EndTime) {
		return ErrRuleOutsideOfficeHours
	}
	if r.HalfLeave.Before(r.StartTime) || r.HalfLeave.After(r.EndTime) {
		return ErrRuleOutsideOfficeHours
	}
	return nil
}
