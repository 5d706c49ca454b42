package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub-erp/staffhub-backend-go/internal/pkg/database"
)

type attendanceRuleRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRuleRepository(db *database.DB) attendance.RuleRepository {
	return &attendanceRuleRepositoryImpl{db: db}
}

const ruleColumns = `id, start_time, end_time, off_day, late_time, half_leave, effective_at, created_at, updated_at`

func scanRule(row pgx.Row) (attendance.Rule, error) {
	var rule attendance.Rule
	var startTime, endTime, lateTime, halfLeave string
	var offDay int
	err := row.Scan(
		&rule.ID,
		&startTime,
		&endTime,
		&offDay,
		&lateTime,
		&halfLeave,
		&rule.EffectiveAt,
		&rule.CreatedAt,
		&rule.UpdatedAt,
	)
	if err != nil {
		return attendance.Rule{}, err
	}

	rule.OffDay = time.Weekday(offDay)
	if rule.StartTime, err = attendance.ParseTimeOfDay(startTime); err != nil {
		return attendance.Rule{}, err
	}
	if rule.EndTime, err = attendance.ParseTimeOfDay(endTime); err != nil {
		return attendance.Rule{}, err
	}
	if rule.LateTime, err = attendance.ParseTimeOfDay(lateTime); err != nil {
		return attendance.Rule{}, err
	}
	if rule.HalfLeave, err = attendance.ParseTimeOfDay(halfLeave); err != nil {
		return attendance.Rule{}, err
	}

	return rule, nil
}

func (r *attendanceRuleRepositoryImpl) Create(ctx context.Context, rule attendance.Rule) (attendance.Rule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_rules (
			id, start_time, end_time, off_day, late_time, half_leave,
			effective_at, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, NOW(), NOW()
		)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rule.StartTime.String(),
		rule.EndTime.String(),
		int(rule.OffDay),
		rule.LateTime.String(),
		rule.HalfLeave.String(),
		rule.EffectiveAt,
	).Scan(&rule.ID, &rule.CreatedAt, &rule.UpdatedAt)
	if err != nil {
		return attendance.Rule{}, err
	}

	return rule, nil
}

func (r *attendanceRuleRepositoryImpl) GetActive(ctx context.Context, at time.Time) (attendance.Rule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + ruleColumns + `
		FROM attendance_rules
		WHERE effective_at <= $1
		ORDER BY effective_at DESC
		LIMIT 1
	`

	rule, err := scanRule(q.QueryRow(ctx, query, at))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Rule{}, attendance.ErrRuleNotConfigured
		}
		return attendance.Rule{}, err
	}

	return rule, nil
}

func (r *attendanceRuleRepositoryImpl) List(ctx context.Context) ([]attendance.Rule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + ruleColumns + `
		FROM attendance_rules
		ORDER BY effective_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []attendance.Rule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, rows.Err()
}

func (r *attendanceRuleRepositoryImpl) Update(ctx context.Context, rule attendance.Rule) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_rules
		SET start_time = $2, end_time = $3, off_day = $4, late_time = $5,
			half_leave = $6, effective_at = $7, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query,
		rule.ID,
		rule.StartTime.String(),
		rule.EndTime.String(),
		int(rule.OffDay),
		rule.LateTime.String(),
		rule.HalfLeave.String(),
		rule.EffectiveAt,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return attendance.ErrRuleNotFound
	}
	return nil
}

func (r *attendanceRuleRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM attendance_rules WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return attendance.ErrRuleNotFound
	}
	return nil
}
