package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/leave"
	"github.com/staffhub-erp/staffhub-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

func (r *leaveRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, subject, reason, from_date, to_date,
			status, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, NOW(), NOW()
		)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID,
		request.Subject,
		request.Reason,
		request.FromDate,
		request.ToDate,
		string(request.Status),
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return request, nil
}

func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.subject, lr.reason, lr.from_date,
			   lr.to_date, lr.status, lr.created_at, lr.updated_at, e.name
		FROM leave_requests lr
		INNER JOIN employees e ON lr.employee_id = e.id
		WHERE lr.id = $1
	`

	var request leave.LeaveRequest
	var status string
	err := q.QueryRow(ctx, query, id).Scan(
		&request.ID,
		&request.EmployeeID,
		&request.Subject,
		&request.Reason,
		&request.FromDate,
		&request.ToDate,
		&status,
		&request.CreatedAt,
		&request.UpdatedAt,
		&request.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveRequest{}, err
	}
	request.Status = leave.ApprovalStatus(status)

	return request, nil
}

func (r *leaveRepositoryImpl) HasOverlapping(ctx context.Context, employeeID string, from, to time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1
			  AND status <> $2
			  AND from_date <= $4 AND to_date >= $3
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, employeeID, string(leave.StatusRejected), from, to).Scan(&exists)
	return exists, err
}

func (r *leaveRepositoryImpl) FindApprovedCovering(ctx context.Context, employeeID string, date time.Time) (*leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, subject, reason, from_date, to_date,
			   status, created_at, updated_at
		FROM leave_requests
		WHERE employee_id = $1
		  AND status = $2
		  AND from_date <= $3 AND to_date >= $3
		LIMIT 1
	`

	var request leave.LeaveRequest
	var status string
	err := q.QueryRow(ctx, query, employeeID, string(leave.StatusApproved), date).Scan(
		&request.ID,
		&request.EmployeeID,
		&request.Subject,
		&request.Reason,
		&request.FromDate,
		&request.ToDate,
		&status,
		&request.CreatedAt,
		&request.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	request.Status = leave.ApprovalStatus(status)

	return &request, nil
}

func (r *leaveRepositoryImpl) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	where := "WHERE 1=1"
	args := []any{}
	argPos := 1

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND lr.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND lr.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.Search != nil {
		where += fmt.Sprintf(" AND (lr.subject ILIKE $%d OR e.name ILIKE $%d)", argPos, argPos)
		args = append(args, "%"+*filter.Search+"%")
		argPos++
	}

	query := fmt.Sprintf(`
		SELECT lr.id, lr.employee_id, lr.subject, lr.reason, lr.from_date,
			   lr.to_date, lr.status, lr.created_at, lr.updated_at, e.name
		FROM leave_requests lr
		INNER JOIN employees e ON lr.employee_id = e.id
		%s
		ORDER BY lr.created_at DESC
	`, where)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var request leave.LeaveRequest
		var status string
		err := rows.Scan(
			&request.ID,
			&request.EmployeeID,
			&request.Subject,
			&request.Reason,
			&request.FromDate,
			&request.ToDate,
			&status,
			&request.CreatedAt,
			&request.UpdatedAt,
			&request.EmployeeName,
		)
		if err != nil {
			return nil, err
		}
		request.Status = leave.ApprovalStatus(status)
		requests = append(requests, request)
	}

	return requests, rows.Err()
}

func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.ApprovalStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, id, string(status))
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveNotFound
	}
	return nil
}
