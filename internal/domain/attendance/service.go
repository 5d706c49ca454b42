package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// Clock marks attendance for an employee: the first call of a day clocks
	// in, the second clocks out and finalizes the day's status.
	Clock(ctx context.Context, employeeID string) (ClockResponse, error)

	// EvaluateDay classifies a day for an employee without writing anything.
	EvaluateDay(ctx context.Context, employeeID string, date string) (DayEvaluationResponse, error)

	// ListAttendance retrieves attendance records with filters (admin)
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
}

// RuleService manages the attendance rule configuration.
type RuleService interface {
	CreateRule(ctx context.Context, req UpsertRuleRequest) (RuleResponse, error)
	ListRules(ctx context.Context) ([]RuleResponse, error)
	UpdateRule(ctx context.Context, id string, req UpsertRuleRequest) (RuleResponse, error)
	DeleteRule(ctx context.Context, id string) error
}
