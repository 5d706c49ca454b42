package leave

import "time"

// ApprovalStatus is the closed set of leave request states.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "Pending"
	StatusApproved ApprovalStatus = "Approved"
	StatusRejected ApprovalStatus = "Rejected"
)

// LeaveRequest is an employee's request for a date range off. Approved leave
// blocks attendance creation for the covered dates and vice versa.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	Subject    string
	Reason     string
	FromDate   time.Time
	ToDate     time.Time
	Status     ApprovalStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
}
