package leave

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveRepo struct {
	requests map[string]*leave.LeaveRequest
	nextID   int
}

func (f *fakeLeaveRepo) Create(ctx context.Context, r leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.nextID++
	r.ID = "lv" + strconv.Itoa(f.nextID)
	f.requests[r.ID] = &r
	return r, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	if r, ok := f.requests[id]; ok {
		return *r, nil
	}
	return leave.LeaveRequest{}, leave.ErrLeaveNotFound
}

func (f *fakeLeaveRepo) HasOverlapping(ctx context.Context, employeeID string, from, to time.Time) (bool, error) {
	for _, r := range f.requests {
		if r.EmployeeID == employeeID && r.Status != leave.StatusRejected &&
			!r.FromDate.After(to) && !r.ToDate.Before(from) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLeaveRepo) FindApprovedCovering(ctx context.Context, employeeID string, date time.Time) (*leave.LeaveRequest, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, r := range f.requests {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, status leave.ApprovalStatus) error {
	r, ok := f.requests[id]
	if !ok {
		return leave.ErrLeaveNotFound
	}
	r.Status = status
	return nil
}

type fakeAttendanceRepo struct {
	recordedDays map[string]bool
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	return att, nil
}
func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	if f.recordedDays[employeeID+"|"+date.Format("2006-01-02")] {
		return &attendance.Attendance{EmployeeID: employeeID, Date: date}, nil
	}
	return nil, nil
}
func (f *fakeAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) error { return nil }
func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}
func (f *fakeAttendanceRepo) Deactivate(ctx context.Context, id string) error { return nil }

type fakeEmployeeRepo struct{}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}
func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if id == "emp1" {
		return employee.Employee{ID: id}, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}
func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) { return nil, nil }
func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) Deactivate(ctx context.Context, id string) error       { return nil }

func newTestService() (*LeaveServiceImpl, *fakeLeaveRepo, *fakeAttendanceRepo) {
	leaveRepo := &fakeLeaveRepo{requests: map[string]*leave.LeaveRequest{}}
	attendanceRepo := &fakeAttendanceRepo{recordedDays: map[string]bool{}}
	svc := &LeaveServiceImpl{
		leaveRepo:      leaveRepo,
		attendanceRepo: attendanceRepo,
		employeeRepo:   &fakeEmployeeRepo{},
	}
	return svc, leaveRepo, attendanceRepo
}

func validRequest() leave.CreateLeaveRequest {
	return leave.CreateLeaveRequest{
		EmployeeID: "emp1",
		Subject:    "Family event",
		Reason:     "Out of town",
		FromDate:   "2026-03-10",
		ToDate:     "2026-03-12",
	}
}

func TestCreateLeave_StartsPending(t *testing.T) {
	svc, _, _ := newTestService()

	resp, err := svc.CreateLeave(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(leave.StatusPending), resp.Status)
	assert.Equal(t, "2026-03-10", resp.FromDate)
	assert.Equal(t, "2026-03-12", resp.ToDate)
}

func TestCreateLeave_RejectsOverlap(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateLeave(context.Background(), validRequest())
	require.NoError(t, err)

	overlapping := validRequest()
	overlapping.FromDate = "2026-03-12"
	overlapping.ToDate = "2026-03-14"
	_, err = svc.CreateLeave(context.Background(), overlapping)
	assert.ErrorIs(t, err, leave.ErrOverlappingLeave)
}

func TestCreateLeave_RejectsAttendanceConflict(t *testing.T) {
	svc, _, attendanceRepo := newTestService()
	attendanceRepo.recordedDays["emp1|2026-03-11"] = true

	_, err := svc.CreateLeave(context.Background(), validRequest())
	assert.ErrorIs(t, err, leave.ErrAttendanceConflict)
}

func TestCreateLeave_UnknownEmployee(t *testing.T) {
	svc, _, _ := newTestService()

	req := validRequest()
	req.EmployeeID = "ghost"
	_, err := svc.CreateLeave(context.Background(), req)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestApproveLeave_TransitionsPending(t *testing.T) {
	svc, leaveRepo, _ := newTestService()

	created, err := svc.CreateLeave(context.Background(), validRequest())
	require.NoError(t, err)

	resp, err := svc.ApproveLeave(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusApproved), resp.Status)
	assert.Equal(t, leave.StatusApproved, leaveRepo.requests[created.ID].Status)
}

func TestApproveLeave_RejectsDoubleProcessing(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.CreateLeave(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = svc.ApproveLeave(context.Background(), created.ID)
	require.NoError(t, err)

	_, err = svc.RejectLeave(context.Background(), created.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)
}

func TestRejectLeave(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.CreateLeave(context.Background(), validRequest())
	require.NoError(t, err)

	resp, err := svc.RejectLeave(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusRejected), resp.Status)
}
