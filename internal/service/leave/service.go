package leave

import (
	"context"

	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/leave"
	"github.com/staffhub-erp/staffhub-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leaveRepo      leave.LeaveRepository
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewLeaveService(
	leaveRepo leave.LeaveRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo:      leaveRepo,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

func (s *LeaveServiceImpl) CreateLeave(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveResponse{}, err
	}

	from, _ := validator.IsValidDate(req.FromDate)
	to, _ := validator.IsValidDate(req.ToDate)

	overlapping, err := s.leaveRepo.HasOverlapping(ctx, req.EmployeeID, from, to)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if overlapping {
		return leave.LeaveResponse{}, leave.ErrOverlappingLeave
	}

	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, day)
		if err != nil {
			return leave.LeaveResponse{}, err
		}
		if record != nil {
			return leave.LeaveResponse{}, leave.ErrAttendanceConflict
		}
	}

	created, err := s.leaveRepo.Create(ctx, leave.LeaveRequest{
		EmployeeID: req.EmployeeID,
		Subject:    req.Subject,
		Reason:     req.Reason,
		FromDate:   from,
		ToDate:     to,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return toResponse(created), nil
}

func (s *LeaveServiceImpl) ListLeaves(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveResponse, error) {
	requests, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, toResponse(request))
	}
	return responses, nil
}

func (s *LeaveServiceImpl) ApproveLeave(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return s.transition(ctx, id, leave.StatusApproved)
}

func (s *LeaveServiceImpl) RejectLeave(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return s.transition(ctx, id, leave.StatusRejected)
}

func (s *LeaveServiceImpl) transition(ctx context.Context, id string, to leave.ApprovalStatus) (leave.LeaveResponse, error) {
	request, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if request.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	if err := s.leaveRepo.UpdateStatus(ctx, id, to); err != nil {
		return leave.LeaveResponse{}, err
	}
	request.Status = to

	return toResponse(request), nil
}

func toResponse(request leave.LeaveRequest) leave.LeaveResponse {
	resp := leave.LeaveResponse{
		ID:         request.ID,
		EmployeeID: request.EmployeeID,
		Subject:    request.Subject,
		Reason:     request.Reason,
		FromDate:   request.FromDate.Format("2006-01-02"),
		ToDate:     request.ToDate.Format("2006-01-02"),
		Status:     string(request.Status),
	}
	if request.EmployeeName != nil {
		resp.EmployeeName = *request.EmployeeName
	}
	return resp
}
