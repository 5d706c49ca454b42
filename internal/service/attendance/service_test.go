package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/holiday"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records map[string]*attendance.Attendance
	nextID  int
}

func attendanceKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	key := attendanceKey(att.EmployeeID, att.Date)
	if _, exists := f.records[key]; exists {
		return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
	}
	f.nextID++
	att.ID = attendanceKey(att.EmployeeID, att.Date)
	att.Active = true
	f.records[key] = &att
	return att, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	if att, ok := f.records[attendanceKey(employeeID, date)]; ok {
		cp := *att
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) error {
	key := attendanceKey(att.EmployeeID, att.Date)
	if _, ok := f.records[key]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	f.records[key] = &att
	return nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	var out []attendance.Attendance
	for _, att := range f.records {
		out = append(out, *att)
	}
	return out, int64(len(out)), nil
}

func (f *fakeAttendanceRepo) Deactivate(ctx context.Context, id string) error { return nil }

type fakeRuleRepo struct {
	rule *attendance.Rule
}

func (f *fakeRuleRepo) Create(ctx context.Context, rule attendance.Rule) (attendance.Rule, error) {
	return rule, nil
}
func (f *fakeRuleRepo) GetActive(ctx context.Context, at time.Time) (attendance.Rule, error) {
	if f.rule == nil {
		return attendance.Rule{}, attendance.ErrRuleNotConfigured
	}
	return *f.rule, nil
}
func (f *fakeRuleRepo) List(ctx context.Context) ([]attendance.Rule, error)    { return nil, nil }
func (f *fakeRuleRepo) Update(ctx context.Context, rule attendance.Rule) error { return nil }
func (f *fakeRuleRepo) Delete(ctx context.Context, id string) error            { return nil }

type fakeHolidayRepo struct {
	holidays []holiday.Holiday
}

func (f *fakeHolidayRepo) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	return h, nil
}
func (f *fakeHolidayRepo) FindCovering(ctx context.Context, date time.Time) (*holiday.Holiday, error) {
	for _, h := range f.holidays {
		if !date.Before(h.FromDate) && !date.After(h.ToDate) {
			cp := h
			return &cp, nil
		}
	}
	return nil, nil
}
func (f *fakeHolidayRepo) ExistsDuplicate(ctx context.Context, name string, from, to time.Time, excludeID string) (bool, error) {
	return false, nil
}
func (f *fakeHolidayRepo) List(ctx context.Context) ([]holiday.Holiday, error)    { return nil, nil }
func (f *fakeHolidayRepo) Update(ctx context.Context, h holiday.Holiday) error    { return nil }
func (f *fakeHolidayRepo) Delete(ctx context.Context, id string) error            { return nil }

type fakeLeaveRepo struct {
	approved []leave.LeaveRequest
}

func (f *fakeLeaveRepo) Create(ctx context.Context, r leave.LeaveRequest) (leave.LeaveRequest, error) {
	return r, nil
}
func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, leave.ErrLeaveNotFound
}
func (f *fakeLeaveRepo) HasOverlapping(ctx context.Context, employeeID string, from, to time.Time) (bool, error) {
	return false, nil
}
func (f *fakeLeaveRepo) FindApprovedCovering(ctx context.Context, employeeID string, date time.Time) (*leave.LeaveRequest, error) {
	for _, r := range f.approved {
		if r.EmployeeID == employeeID && !date.Before(r.FromDate) && !date.After(r.ToDate) {
			cp := r
			return &cp, nil
		}
	}
	return nil, nil
}
func (f *fakeLeaveRepo) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequest, error) {
	return nil, nil
}
func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, status leave.ApprovalStatus) error {
	return nil
}

type fakeEmployeeRepo struct {
	ids map[string]bool
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}
func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if f.ids[id] {
		return employee.Employee{ID: id, Name: "Test Employee"}, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}
func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) { return nil, nil }
func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) Deactivate(ctx context.Context, id string) error       { return nil }

type testEnv struct {
	svc            *AttendanceServiceImpl
	attendanceRepo *fakeAttendanceRepo
	ruleRepo       *fakeRuleRepo
	holidayRepo    *fakeHolidayRepo
	leaveRepo      *fakeLeaveRepo
	clock          *time.Time
}

func mustClock(t *testing.T, s string) attendance.TimeOfDay {
	t.Helper()
	tod, err := attendance.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

// newTestEnv sets up a service with an office rule of 08:00-17:00, Sunday
// off, late at 08:00, half-leave at 13:00. The clock starts on Monday
// 2026-01-05.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	rule := &attendance.Rule{
		ID:        "rule1",
		StartTime: mustClock(t, "08:00"),
		EndTime:   mustClock(t, "17:00"),
		OffDay:    time.Sunday,
		LateTime:  mustClock(t, "08:00"),
		HalfLeave: mustClock(t, "13:00"),
	}

	now := time.Date(2026, time.January, 5, 7, 55, 0, 0, time.UTC)
	env := &testEnv{
		attendanceRepo: &fakeAttendanceRepo{records: map[string]*attendance.Attendance{}},
		ruleRepo:       &fakeRuleRepo{rule: rule},
		holidayRepo:    &fakeHolidayRepo{},
		leaveRepo:      &fakeLeaveRepo{},
		clock:          &now,
	}
	env.svc = &AttendanceServiceImpl{
		attendanceRepo: env.attendanceRepo,
		ruleRepo:       env.ruleRepo,
		holidayRepo:    env.holidayRepo,
		leaveRepo:      env.leaveRepo,
		employeeRepo:   &fakeEmployeeRepo{ids: map[string]bool{"emp1": true}},
		location:       time.UTC,
		now:            func() time.Time { return *env.clock },
	}
	return env
}

func (e *testEnv) setClock(t *testing.T, s string) {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04:05", s)
	require.NoError(t, err)
	*e.clock = parsed
}

func TestClock_FirstCallClocksInPresent(t *testing.T) {
	env := newTestEnv(t)
	env.setClock(t, "2026-01-05 07:55:00")

	resp, err := env.svc.Clock(context.Background(), "emp1")
	require.NoError(t, err)

	assert.Equal(t, "clock_in", resp.Action)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
	require.NotNil(t, resp.Record.ClockIn)
	assert.Equal(t, "07:55:00", *resp.Record.ClockIn)
	assert.Nil(t, resp.Record.ClockOut)
}

func TestClock_ArrivalAtThresholdIsLate(t *testing.T) {
	env := newTestEnv(t)
	env.setClock(t, "2026-01-05 08:00:00")

	resp, err := env.svc.Clock(context.Background(), "emp1")
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusLate), resp.Status)
}

func TestClock_SecondCallClocksOut(t *testing.T) {
	env := newTestEnv(t)
	env.setClock(t, "2026-01-05 07:55:00")
	_, err := env.svc.Clock(context.Background(), "emp1")
	require.NoError(t, err)

	env.setClock(t, "2026-01-05 17:05:00")
	resp, err := env.svc.Clock(context.Background(), "emp1")
	require.NoError(t, err)

	assert.Equal(t, "clock_out", resp.Action)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
	require.NotNil(t, resp.Record.WorkMinutes)
	assert.Equal(t, 550, *resp.Record.WorkMinutes)
}

func TestClock_ShortStayBecomesShortLeave(t *testing.T) {
	env := newTestEnv(t)
	env.setClock(t, "2026-01-05 08:05:00")
	_, err := env.svc.Clock(context.Background(), "emp1")
	require.NoError(t, err)

	env.setClock(t, "2026-01-05 08:40:00")
	resp, err := env.svc.Clock(context.Background(), "emp1")
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusShortLeave), resp.Status)
}

func TestClock_ImmediateClockOutIsAbsent(t *testing.T) {
	env := newTestEnv(t)
	env.setClock(t, "2026-01-05 08:05:00")
	_, err := env.svc.Clock(context.Background(), "emp1")
	require.NoError(t, err)

	env.setClock(t, "2026-01-05 08:05:30")
	resp, err := env.svc.Clock(context.Background(), "emp1")
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusAbsent), resp.Status)
}

func TestClock_ThirdCallRejected(t *testing.T) {
	env := newTestEnv(t)
	env.setClock(t, "2026-01-05 08:05:00")
	_, err := env.svc.Clock(context.Background(), "emp1")
	require.NoError(t, err)

	env.setClock(t, "2026-01-05 17:00:00")
	_, err = env.svc.Clock(context.Background(), "emp1")
	require.NoError(t, err)

	_, err = env.svc.Clock(context.Background(), "emp1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
}

func TestClock_HolidayBlocksAttendance(t *testing.T) {
	env := newTestEnv(t)
	env.holidayRepo.holidays = []holiday.Holiday{{
		Name:     "Founders Day",
		FromDate: time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
		ToDate:   time.Date(2026, time.January, 6, 0, 0, 0, 0, time.UTC),
		Active:   true,
	}}
	env.setClock(t, "2026-01-05 08:05:00")

	_, err := env.svc.Clock(context.Background(), "emp1")
	assert.ErrorIs(t, err, attendance.ErrHolidayToday)
}

func TestClock_WeeklyOffDayBlocked(t *testing.T) {
	env := newTestEnv(t)
	// 2026-01-04 is a Sunday.
	env.setClock(t, "2026-01-04 09:00:00")

	_, err := env.svc.Clock(context.Background(), "emp1")
	assert.ErrorIs(t, err, attendance.ErrWeeklyOffDay)
}

func TestClock_ApprovedLeaveBlocked(t *testing.T) {
	env := newTestEnv(t)
	env.leaveRepo.approved = []leave.LeaveRequest{{
		EmployeeID: "emp1",
		FromDate:   time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
		ToDate:     time.Date(2026, time.January, 7, 0, 0, 0, 0, time.UTC),
		Status:     leave.StatusApproved,
	}}
	env.setClock(t, "2026-01-05 08:05:00")

	_, err := env.svc.Clock(context.Background(), "emp1")
	assert.ErrorIs(t, err, attendance.ErrOnApprovedLeave)
}

func TestClock_MissingRuleFails(t *testing.T) {
	env := newTestEnv(t)
	env.ruleRepo.rule = nil
	env.setClock(t, "2026-01-05 08:05:00")

	_, err := env.svc.Clock(context.Background(), "emp1")
	assert.ErrorIs(t, err, attendance.ErrRuleNotConfigured)
}

func TestClock_UnknownEmployee(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Clock(context.Background(), "ghost")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEvaluateDay_Holiday(t *testing.T) {
	env := newTestEnv(t)
	env.holidayRepo.holidays = []holiday.Holiday{{
		Name:     "Founders Day",
		FromDate: time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
		ToDate:   time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
		Active:   true,
	}}

	resp, err := env.svc.EvaluateDay(context.Background(), "emp1", "2026-01-05")
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusHoliday), resp.Status)
	assert.Equal(t, "Founders Day", resp.Message)
}

func TestEvaluateDay_ApprovedLeave(t *testing.T) {
	env := newTestEnv(t)
	env.leaveRepo.approved = []leave.LeaveRequest{{
		EmployeeID: "emp1",
		Subject:    "Family event",
		FromDate:   time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
		ToDate:     time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
		Status:     leave.StatusApproved,
	}}

	resp, err := env.svc.EvaluateDay(context.Background(), "emp1", "2026-01-05")
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusLeave), resp.Status)
}

func TestEvaluateDay_NoRecordIsAbsent(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.svc.EvaluateDay(context.Background(), "emp1", "2026-01-05")
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusAbsent), resp.Status)
	assert.Nil(t, resp.Record)
}

func TestEvaluateDay_ReturnsRecordStatus(t *testing.T) {
	env := newTestEnv(t)
	env.setClock(t, "2026-01-05 08:30:00")
	_, err := env.svc.Clock(context.Background(), "emp1")
	require.NoError(t, err)

	resp, err := env.svc.EvaluateDay(context.Background(), "emp1", "2026-01-05")
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusLate), resp.Status)
	require.NotNil(t, resp.Record)
	require.NotNil(t, resp.Record.ClockIn)
	assert.Equal(t, "08:30:00", *resp.Record.ClockIn)
}
