package leave

import (
	"context"
	"time"
)

// LeaveRepository defines data access for leave requests.
type LeaveRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// HasOverlapping reports whether a non-rejected request of the employee
	// overlaps [from, to].
	HasOverlapping(ctx context.Context, employeeID string, from, to time.Time) (bool, error)

	// FindApprovedCovering returns the approved request of the employee whose
	// range contains date, or nil.
	FindApprovedCovering(ctx context.Context, employeeID string, date time.Time) (*LeaveRequest, error)

	List(ctx context.Context, filter LeaveFilter) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status ApprovalStatus) error
}
