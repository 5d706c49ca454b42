package response

import (
	"errors"
	"net/http"

	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/account"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/auth"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/holiday"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/leave"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/loan"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/payroll"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/salary"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub-erp/staffhub-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Attendance already completed for today")
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in today")
	case errors.Is(err, attendance.ErrNotClockedIn):
		BadRequest(w, "No open clock-in found for today", nil)
	case errors.Is(err, attendance.ErrClockOutBeforeClockIn):
		BadRequest(w, "Clock-out cannot be before clock-in", nil)
	case errors.Is(err, attendance.ErrHolidayToday):
		BadRequest(w, "Attendance cannot be marked on a holiday", nil)
	case errors.Is(err, attendance.ErrWeeklyOffDay):
		BadRequest(w, "Attendance cannot be marked on the weekly off-day", nil)
	case errors.Is(err, attendance.ErrOnApprovedLeave):
		BadRequest(w, "Attendance cannot be marked during approved leave", nil)
	case errors.Is(err, attendance.ErrRuleNotConfigured):
		InternalServerError(w, "Attendance rule is not configured")
	case errors.Is(err, attendance.ErrRuleNotFound):
		NotFound(w, "Attendance rule not found")
	case errors.Is(err, attendance.ErrRuleOutsideOfficeHours):
		BadRequest(w, "Rule thresholds must lie within office hours", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrDuplicateHoliday):
		Conflict(w, "An identical holiday already exists")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "An overlapping leave request already exists")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrAttendanceConflict):
		Conflict(w, "Attendance already recorded within the requested dates")

	// Loan domain errors
	case errors.Is(err, loan.ErrLoanNotFound):
		NotFound(w, "Loan not found")

	// Salary domain errors
	case errors.Is(err, salary.ErrConfigurationNotFound):
		NotFound(w, "Salary configuration not found")
	case errors.Is(err, salary.ErrActiveConfigExists):
		Conflict(w, "An active salary configuration already exists for this month")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrCycleAlreadyRun):
		BadRequest(w, "Salary cycle has already been processed for this period", nil)
	case errors.Is(err, payroll.ErrNoActiveSalaries):
		NotFound(w, "No active salary configurations for this period")
	case errors.Is(err, payroll.ErrInvalidCyclePeriod):
		BadRequest(w, "Invalid payroll cycle period", nil)

	// Account domain errors
	case errors.Is(err, account.ErrEntryNotFound):
		NotFound(w, "Ledger entry not found")
	case errors.Is(err, account.ErrDuplicateRefNo):
		Conflict(w, "Reference number already exists")
	case errors.Is(err, account.ErrPaymentBeforeJoin):
		BadRequest(w, "Payment date is before the employee's joining date", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrDuplicateEmail):
		Conflict(w, "Email already registered")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
