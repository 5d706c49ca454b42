package attendance

import "errors"

// Attendance domain errors
var (
	// Clock errors
	ErrAlreadyClockedIn      = errors.New("already clocked in today")
	ErrAlreadyClockedOut     = errors.New("already clocked out today")
	ErrNotClockedIn          = errors.New("no clock-in recorded for today")
	ErrClockOutBeforeClockIn = errors.New("clock-out time is before clock-in time")
	ErrHolidayToday          = errors.New("attendance cannot be marked on a holiday")
	ErrWeeklyOffDay          = errors.New("attendance cannot be marked on the weekly off-day")
	ErrOnApprovedLeave       = errors.New("attendance cannot be marked during approved leave")

	// Rule errors
	ErrRuleNotConfigured      = errors.New("attendance rules are not configured")
	ErrRuleNotFound           = errors.New("attendance rule not found")
	ErrRuleOutsideOfficeHours = errors.New("late and half-leave times must be within office hours")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
