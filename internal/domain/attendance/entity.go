package attendance

import (
	"time"
)

// Status is the closed set of attendance states for one (employee, date).
type Status string

const (
	StatusPresent    Status = "Present"
	StatusLate       Status = "Late"
	StatusAbsent     Status = "Absent"
	StatusShortLeave Status = "Short Leave"
	StatusHoliday    Status = "Holiday"
	StatusLeave      Status = "Leave"
)

// Attendance is one employee's record for one working day. Created on the
// first clock-in, closed on clock-out, soft deleted via the Active flag.
type Attendance struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	ClockIn     *TimeOfDay
	ClockOut    *TimeOfDay
	WorkMinutes *int
	Status      Status
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
}

// Open reports whether the record is awaiting a clock-out.
func (a Attendance) Open() bool {
	return a.ClockIn != nil && a.ClockOut == nil
}

// Rule is the office attendance policy. Exactly one rule governs any instant:
// the one with the latest EffectiveAt not in the future.
type Rule struct {
	ID          string
	StartTime   TimeOfDay
	EndTime     TimeOfDay
	OffDay      time.Weekday
	LateTime    TimeOfDay
	HalfLeave   TimeOfDay
	EffectiveAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
