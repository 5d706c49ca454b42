package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
type AttendanceRepository interface {
	// Create inserts a new record. The schema carries a unique constraint on
	// (employee_id, date); a violation surfaces as ErrAlreadyClockedIn.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByEmployeeAndDate returns the active record for the given day, or
	// nil when the employee has not clocked in.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// Update persists clock-out data and the final status.
	Update(ctx context.Context, attendance Attendance) error

	// List retrieves attendance records with filters and pagination.
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// Deactivate soft deletes a record.
	Deactivate(ctx context.Context, id string) error
}

// RuleRepository defines data access for attendance rules.
type RuleRepository interface {
	Create(ctx context.Context, rule Rule) (Rule, error)

	// GetActive returns the rule with the latest effective_at not after the
	// given instant. ErrRuleNotConfigured when none qualifies.
	GetActive(ctx context.Context, at time.Time) (Rule, error)

	List(ctx context.Context) ([]Rule, error)
	Update(ctx context.Context, rule Rule) error
	Delete(ctx context.Context, id string) error
}
