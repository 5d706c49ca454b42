package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/holiday"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/leave"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	ruleRepo       attendance.RuleRepository
	holidayRepo    holiday.HolidayRepository
	leaveRepo      leave.LeaveRepository
	employeeRepo   employee.EmployeeRepository
	location       *time.Location
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	ruleRepo attendance.RuleRepository,
	holidayRepo holiday.HolidayRepository,
	leaveRepo leave.LeaveRepository,
	employeeRepo employee.EmployeeRepository,
	location *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		ruleRepo:       ruleRepo,
		holidayRepo:    holidayRepo,
		leaveRepo:      leaveRepo,
		employeeRepo:   employeeRepo,
		location:       location,
		now:            time.Now,
	}
}

// calendarDate strips the wall clock off a local instant. Dates are stored
// timezone naive.
func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *AttendanceServiceImpl) Clock(ctx context.Context, employeeID string) (attendance.ClockResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return attendance.ClockResponse{}, err
	}

	localNow := s.now().In(s.location)
	today := calendarDate(localNow)
	clock := attendance.FromClock(localNow)

	rule, err := s.checkDayOpen(ctx, employeeID, localNow, today)
	if err != nil {
		return attendance.ClockResponse{}, err
	}

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.ClockResponse{}, err
	}

	switch {
	case record == nil:
		return s.clockIn(ctx, employeeID, today, clock, rule)
	case record.Open():
		return s.clockOut(ctx, *record, clock, rule)
	default:
		return attendance.ClockResponse{}, attendance.ErrAlreadyClockedOut
	}
}

// checkDayOpen rejects clocking on holidays, weekly off-days and approved
// leave days, and returns the rule in force.
func (s *AttendanceServiceImpl) checkDayOpen(ctx context.Context, employeeID string, at time.Time, date time.Time) (attendance.Rule, error) {
	h, err := s.holidayRepo.FindCovering(ctx, date)
	if err != nil {
		return attendance.Rule{}, err
	}
	if h != nil {
		return attendance.Rule{}, attendance.ErrHolidayToday
	}

	rule, err := s.ruleRepo.GetActive(ctx, at)
	if err != nil {
		return attendance.Rule{}, err
	}
	if attendance.IsOffDay(date, rule) {
		return attendance.Rule{}, attendance.ErrWeeklyOffDay
	}

	lv, err := s.leaveRepo.FindApprovedCovering(ctx, employeeID, date)
	if err != nil {
		return attendance.Rule{}, err
	}
	if lv != nil {
		return attendance.Rule{}, attendance.ErrOnApprovedLeave
	}

	return rule, nil
}

func (s *AttendanceServiceImpl) clockIn(ctx context.Context, employeeID string, date time.Time, clock attendance.TimeOfDay, rule attendance.Rule) (attendance.ClockResponse, error) {
	status := attendance.OpeningStatus(clock, rule)

	record, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID: employeeID,
		Date:       date,
		ClockIn:    &clock,
		Status:     status,
	})
	if err != nil {
		return attendance.ClockResponse{}, err
	}

	return attendance.ClockResponse{
		Action:  "clock_in",
		Status:  string(status),
		Message: fmt.Sprintf("Clocked in at %s", clock.String()),
		Record:  toAttendanceResponse(record),
	}, nil
}

func (s *AttendanceServiceImpl) clockOut(ctx context.Context, record attendance.Attendance, clock attendance.TimeOfDay, rule attendance.Rule) (attendance.ClockResponse, error) {
	status, duration, err := attendance.ClosingStatus(record.Status, *record.ClockIn, clock, rule)
	if err != nil {
		return attendance.ClockResponse{}, err
	}

	minutes := int(duration.Minutes())
	record.ClockOut = &clock
	record.WorkMinutes = &minutes
	record.Status = status

	if err := s.attendanceRepo.Update(ctx, record); err != nil {
		return attendance.ClockResponse{}, err
	}

	return attendance.ClockResponse{
		Action:  "clock_out",
		Status:  string(status),
		Message: fmt.Sprintf("Clocked out at %s", clock.String()),
		Record:  toAttendanceResponse(record),
	}, nil
}

func (s *AttendanceServiceImpl) EvaluateDay(ctx context.Context, employeeID string, date string) (attendance.DayEvaluationResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return attendance.DayEvaluationResponse{}, err
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return attendance.DayEvaluationResponse{}, fmt.Errorf("invalid date %q: %w", date, err)
	}

	resp := attendance.DayEvaluationResponse{
		EmployeeID: employeeID,
		Date:       date,
	}

	h, err := s.holidayRepo.FindCovering(ctx, day)
	if err != nil {
		return attendance.DayEvaluationResponse{}, err
	}
	if h != nil {
		resp.Status = string(attendance.StatusHoliday)
		resp.Message = h.Name
		return resp, nil
	}

	lv, err := s.leaveRepo.FindApprovedCovering(ctx, employeeID, day)
	if err != nil {
		return attendance.DayEvaluationResponse{}, err
	}
	if lv != nil {
		resp.Status = string(attendance.StatusLeave)
		resp.Message = lv.Subject
		return resp, nil
	}

	rule, err := s.ruleRepo.GetActive(ctx, day)
	if err != nil {
		return attendance.DayEvaluationResponse{}, err
	}
	if attendance.IsOffDay(day, rule) {
		resp.Status = string(attendance.StatusHoliday)
		resp.Message = "Weekly off-day"
		return resp, nil
	}

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return attendance.DayEvaluationResponse{}, err
	}
	if record == nil {
		resp.Status = string(attendance.StatusAbsent)
		resp.Message = "No attendance recorded"
		return resp, nil
	}

	r := toAttendanceResponse(*record)
	resp.Status = string(record.Status)
	resp.Record = &r
	return resp, nil
}

func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	records, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toAttendanceResponse(record))
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		Attendances: responses,
	}, nil
}

func toAttendanceResponse(a attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:          a.ID,
		EmployeeID:  a.EmployeeID,
		Date:        a.Date.Format("2006-01-02"),
		WorkMinutes: a.WorkMinutes,
		Status:      string(a.Status),
	}
	if a.EmployeeName != nil {
		resp.EmployeeName = *a.EmployeeName
	}
	if a.ClockIn != nil {
		s := a.ClockIn.String()
		resp.ClockIn = &s
	}
	if a.ClockOut != nil {
		s := a.ClockOut.String()
		resp.ClockOut = &s
	}
	return resp
}
