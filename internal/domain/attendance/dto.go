package attendance

import (
	"github.com/staffhub-erp/staffhub-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	ClockIn      *string `json:"clock_in"`
	ClockOut     *string `json:"clock_out"`
	WorkMinutes  *int    `json:"work_minutes"`
	Status       string  `json:"status"`
}

// ClockResponse is returned by the single clock endpoint, which acts as a
// clock-in or a clock-out depending on the day's existing state.
type ClockResponse struct {
	Action  string             `json:"action"` // "clock_in" or "clock_out"
	Status  string             `json:"status"`
	Message string             `json:"message"`
	Record  AttendanceResponse `json:"record"`
}

// DayEvaluationResponse reports how a day classifies for an employee without
// mutating anything.
type DayEvaluationResponse struct {
	EmployeeID string              `json:"employee_id"`
	Date       string              `json:"date"`
	Status     string              `json:"status"`
	Message    string              `json:"message,omitempty"`
	Record     *AttendanceResponse `json:"record,omitempty"`
}

type AttendanceFilter struct {
	EmployeeID *string
	Status     *string
	StartDate  *string
	EndDate    *string
	Page       int
	Limit      int
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.Status != nil {
		valid := []string{
			string(StatusPresent), string(StatusLate), string(StatusAbsent),
			string(StatusShortLeave), string(StatusHoliday), string(StatusLeave),
		}
		if !validator.IsInSlice(*f.Status, valid) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "unknown attendance status",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	Attendances []AttendanceResponse `json:"attendances"`
}

// ========================================
// RULE DTOs
// ========================================

type UpsertRuleRequest struct {
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	OffDay      string  `json:"off_day"`
	LateTime    string  `json:"late_time"`
	HalfLeave   string  `json:"half_leave"`
	EffectiveAt *string `json:"effective_at"`
}

func (r *UpsertRuleRequest) Validate() error {
	var errs validator.ValidationErrors

	for field, value := range map[string]string{
		"start_time": r.StartTime,
		"end_time":   r.EndTime,
		"late_time":  r.LateTime,
		"half_leave": r.HalfLeave,
	} {
		if validator.IsEmpty(value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " is required",
			})
		} else if !validator.IsValidClockTime(value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be in HH:MM or HH:MM:SS format",
			})
		}
	}

	if validator.IsEmpty(r.OffDay) {
		errs = append(errs, validator.ValidationError{
			Field:   "off_day",
			Message: "off_day is required",
		})
	} else if _, ok := validator.ParseWeekday(r.OffDay); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "off_day",
			Message: "off_day must be an English weekday name",
		})
	}

	if r.EffectiveAt != nil {
		if _, ok := validator.IsValidDate(*r.EffectiveAt); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "effective_at",
				Message: "effective_at must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RuleResponse struct {
	ID          string `json:"id"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	OffDay      string `json:"off_day"`
	LateTime    string `json:"late_time"`
	HalfLeave   string `json:"half_leave"`
	EffectiveAt string `json:"effective_at"`
}
