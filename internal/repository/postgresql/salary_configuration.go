package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/salary"
	"github.com/staffhub-erp/staffhub-backend-go/internal/pkg/database"
)

type salaryConfigurationRepositoryImpl struct {
	db *database.DB
}

func NewSalaryConfigurationRepository(db *database.DB) salary.ConfigurationRepository {
	return &salaryConfigurationRepositoryImpl{db: db}
}

func (r *salaryConfigurationRepositoryImpl) Create(ctx context.Context, config salary.Configuration) (salary.Configuration, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_configurations (
			id, employee_id, salary_amount, month_allowance,
			transport_allowance, medical_allowance, total_salary,
			config_date, effective_from, status, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW()
		)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		config.EmployeeID,
		config.SalaryAmount,
		config.MonthAllowance,
		config.TransportAllowance,
		config.MedicalAllowance,
		config.TotalSalary,
		config.ConfigDate,
		config.EffectiveFrom,
		string(config.Status),
	).Scan(&config.ID, &config.CreatedAt, &config.UpdatedAt)
	if err != nil {
		return salary.Configuration{}, err
	}

	return config, nil
}

func (r *salaryConfigurationRepositoryImpl) GetByID(ctx context.Context, id string) (salary.Configuration, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sc.id, sc.employee_id, sc.salary_amount, sc.month_allowance,
			   sc.transport_allowance, sc.medical_allowance, sc.total_salary,
			   sc.config_date, sc.effective_from, sc.status,
			   sc.created_at, sc.updated_at, e.name
		FROM salary_configurations sc
		INNER JOIN employees e ON sc.employee_id = e.id
		WHERE sc.id = $1
	`

	var config salary.Configuration
	var status string
	err := q.QueryRow(ctx, query, id).Scan(
		&config.ID,
		&config.EmployeeID,
		&config.SalaryAmount,
		&config.MonthAllowance,
		&config.TransportAllowance,
		&config.MedicalAllowance,
		&config.TotalSalary,
		&config.ConfigDate,
		&config.EffectiveFrom,
		&status,
		&config.CreatedAt,
		&config.UpdatedAt,
		&config.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.Configuration{}, salary.ErrConfigurationNotFound
		}
		return salary.Configuration{}, err
	}
	config.Status = salary.ConfigStatus(status)

	return config, nil
}

func (r *salaryConfigurationRepositoryImpl) List(ctx context.Context) ([]salary.Configuration, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sc.id, sc.employee_id, sc.salary_amount, sc.month_allowance,
			   sc.transport_allowance, sc.medical_allowance, sc.total_salary,
			   sc.config_date, sc.effective_from, sc.status,
			   sc.created_at, sc.updated_at, e.name
		FROM salary_configurations sc
		INNER JOIN employees e ON sc.employee_id = e.id
		ORDER BY sc.config_date DESC
	`

	return r.scanConfigurations(ctx, q, query)
}

func (r *salaryConfigurationRepositoryImpl) ListActiveByPeriod(ctx context.Context, year int, month int) ([]salary.Configuration, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sc.id, sc.employee_id, sc.salary_amount, sc.month_allowance,
			   sc.transport_allowance, sc.medical_allowance, sc.total_salary,
			   sc.config_date, sc.effective_from, sc.status,
			   sc.created_at, sc.updated_at, e.name
		FROM salary_configurations sc
		INNER JOIN employees e ON sc.employee_id = e.id
		WHERE sc.status = $1
		  AND EXTRACT(YEAR FROM sc.config_date) = $2
		  AND EXTRACT(MONTH FROM sc.config_date) = $3
		ORDER BY sc.employee_id
	`

	return r.scanConfigurations(ctx, q, query, string(salary.StatusActive), year, month)
}

func (r *salaryConfigurationRepositoryImpl) HasActiveInMonth(ctx context.Context, employeeID string, year int, month int, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM salary_configurations
			WHERE employee_id = $1
			  AND status = $2
			  AND EXTRACT(YEAR FROM config_date) = $3
			  AND EXTRACT(MONTH FROM config_date) = $4
			  AND id <> $5
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, employeeID, string(salary.StatusActive), year, month, excludeID).Scan(&exists)
	return exists, err
}

func (r *salaryConfigurationRepositoryImpl) Update(ctx context.Context, config salary.Configuration) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_configurations
		SET salary_amount = $2, month_allowance = $3, transport_allowance = $4,
			medical_allowance = $5, total_salary = $6, config_date = $7,
			effective_from = $8, status = $9, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query,
		config.ID,
		config.SalaryAmount,
		config.MonthAllowance,
		config.TransportAllowance,
		config.MedicalAllowance,
		config.TotalSalary,
		config.ConfigDate,
		config.EffectiveFrom,
		string(config.Status),
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return salary.ErrConfigurationNotFound
	}
	return nil
}

func (r *salaryConfigurationRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_configurations
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, id, string(salary.StatusInactive))
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return salary.ErrConfigurationNotFound
	}
	return nil
}

func (r *salaryConfigurationRepositoryImpl) scanConfigurations(ctx context.Context, q database.Querier, query string, args ...any) ([]salary.Configuration, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var configs []salary.Configuration
	for rows.Next() {
		var config salary.Configuration
		var status string
		err := rows.Scan(
			&config.ID,
			&config.EmployeeID,
			&config.SalaryAmount,
			&config.MonthAllowance,
			&config.TransportAllowance,
			&config.MedicalAllowance,
			&config.TotalSalary,
			&config.ConfigDate,
			&config.EffectiveFrom,
			&status,
			&config.CreatedAt,
			&config.UpdatedAt,
			&config.EmployeeName,
		)
		if err != nil {
			return nil, err
		}
		config.Status = salary.ConfigStatus(status)
		configs = append(configs, config)
	}

	return configs, rows.Err()
}
