package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub-erp/staffhub-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// scanClock converts a nullable "HH:MM:SS" column into a TimeOfDay.
func scanClock(s *string) (*attendance.TimeOfDay, error) {
	if s == nil {
		return nil, nil
	}
	t, err := attendance.ParseTimeOfDay(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func clockValue(t *attendance.TimeOfDay) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			id, employee_id, date, clock_in, clock_out, work_minutes,
			status, active, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, true, NOW(), NOW()
		)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.EmployeeID,
		att.Date,
		clockValue(att.ClockIn),
		clockValue(att.ClockOut),
		att.WorkMinutes,
		string(att.Status),
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.Attendance{}, err
	}
	att.Active = true

	return att, nil
}

func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.clock_in, a.clock_out,
			   a.work_minutes, a.status, a.active, a.created_at, a.updated_at
		FROM attendances a
		WHERE a.employee_id = $1 AND a.date = $2 AND a.active = true
	`

	var att attendance.Attendance
	var clockIn, clockOut *string
	var status string
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&att.ID,
		&att.EmployeeID,
		&att.Date,
		&clockIn,
		&clockOut,
		&att.WorkMinutes,
		&status,
		&att.Active,
		&att.CreatedAt,
		&att.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	att.Status = attendance.Status(status)
	if att.ClockIn, err = scanClock(clockIn); err != nil {
		return nil, err
	}
	if att.ClockOut, err = scanClock(clockOut); err != nil {
		return nil, err
	}

	return &att, nil
}

func (r *attendanceRepositoryImpl) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET clock_out = $2, work_minutes = $3, status = $4, updated_at = NOW()
		WHERE id = $1 AND active = true
	`

	commandTag, err := q.Exec(ctx, query,
		att.ID,
		clockValue(att.ClockOut),
		att.WorkMinutes,
		string(att.Status),
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "WHERE a.active = true"
	args := []any{}
	argPos := 1

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND a.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND a.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.StartDate != nil {
		where += fmt.Sprintf(" AND a.date >= $%d", argPos)
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil {
		where += fmt.Sprintf(" AND a.date <= $%d", argPos)
		args = append(args, *filter.EndDate)
		argPos++
	}

	countQuery := "SELECT COUNT(*) FROM attendances a " + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT a.id, a.employee_id, a.date, a.clock_in, a.clock_out,
			   a.work_minutes, a.status, a.active, a.created_at, a.updated_at,
			   e.name
		FROM attendances a
		INNER JOIN employees e ON a.employee_id = e.id
		%s
		ORDER BY a.date DESC, a.created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		var clockIn, clockOut *string
		var status string
		err := rows.Scan(
			&att.ID,
			&att.EmployeeID,
			&att.Date,
			&clockIn,
			&clockOut,
			&att.WorkMinutes,
			&status,
			&att.Active,
			&att.CreatedAt,
			&att.UpdatedAt,
			&att.EmployeeName,
		)
		if err != nil {
			return nil, 0, err
		}
		att.Status = attendance.Status(status)
		if att.ClockIn, err = scanClock(clockIn); err != nil {
			return nil, 0, err
		}
		if att.ClockOut, err = scanClock(clockOut); err != nil {
			return nil, 0, err
		}
		attendances = append(attendances, att)
	}

	return attendances, total, rows.Err()
}

func (r *attendanceRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET active = false, updated_at = NOW()
		WHERE id = $1 AND active = true
	`
	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}
