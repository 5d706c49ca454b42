package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/holiday"
	"github.com/staffhub-erp/staffhub-backend-go/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

func (r *holidayRepositoryImpl) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (
			id, name, from_date, to_date, active, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, true, NOW(), NOW()
		)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, h.Name, h.FromDate, h.ToDate).
		Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return holiday.Holiday{}, err
	}
	h.Active = true

	return h, nil
}

func (r *holidayRepositoryImpl) FindCovering(ctx context.Context, date time.Time) (*holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, from_date, to_date, active, created_at, updated_at
		FROM holidays
		WHERE active = true AND from_date <= $1 AND to_date >= $1
		ORDER BY from_date
		LIMIT 1
	`

	var h holiday.Holiday
	err := q.QueryRow(ctx, query, date).Scan(
		&h.ID,
		&h.Name,
		&h.FromDate,
		&h.ToDate,
		&h.Active,
		&h.CreatedAt,
		&h.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &h, nil
}

func (r *holidayRepositoryImpl) ExistsDuplicate(ctx context.Context, name string, from, to time.Time, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM holidays
			WHERE active = true
			  AND LOWER(name) = LOWER($1)
			  AND from_date = $2 AND to_date = $3
			  AND id <> $4
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, name, from, to, excludeID).Scan(&exists)
	return exists, err
}

func (r *holidayRepositoryImpl) List(ctx context.Context) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, from_date, to_date, active, created_at, updated_at
		FROM holidays
		WHERE active = true
		ORDER BY from_date
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		err := rows.Scan(
			&h.ID,
			&h.Name,
			&h.FromDate,
			&h.ToDate,
			&h.Active,
			&h.CreatedAt,
			&h.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}

func (r *holidayRepositoryImpl) Update(ctx context.Context, h holiday.Holiday) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE holidays
		SET name = $2, from_date = $3, to_date = $4, updated_at = NOW()
		WHERE id = $1 AND active = true
	`

	commandTag, err := q.Exec(ctx, query, h.ID, h.Name, h.FromDate, h.ToDate)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}

func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE holidays
		SET active = false, updated_at = NOW()
		WHERE id = $1 AND active = true
	`
	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}
