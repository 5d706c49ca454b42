package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/loan"
	"github.com/staffhub-erp/staffhub-backend-go/internal/pkg/database"
)

type loanRepositoryImpl struct {
	db *database.DB
}

func NewLoanRepository(db *database.DB) loan.LoanRepository {
	return &loanRepositoryImpl{db: db}
}

func (r *loanRepositoryImpl) Create(ctx context.Context, l loan.Loan) (loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO loans (
			id, employee_id, ref_no, apply_date, loan_amount,
			deduction_per_cycle, remaining_amount, returned_amount,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW(), NOW()
		)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		l.EmployeeID,
		l.RefNo,
		l.ApplyDate,
		l.LoanAmount,
		l.DeductionPerCycle,
		l.RemainingAmount,
		l.ReturnedAmount,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return loan.Loan{}, err
	}

	return l, nil
}

func (r *loanRepositoryImpl) GetByID(ctx context.Context, id string) (loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.employee_id, l.ref_no, l.apply_date, l.loan_amount,
			   l.deduction_per_cycle, l.remaining_amount, l.returned_amount,
			   l.created_at, l.updated_at, e.name
		FROM loans l
		INNER JOIN employees e ON l.employee_id = e.id
		WHERE l.id = $1
	`

	var l loan.Loan
	err := q.QueryRow(ctx, query, id).Scan(
		&l.ID,
		&l.EmployeeID,
		&l.RefNo,
		&l.ApplyDate,
		&l.LoanAmount,
		&l.DeductionPerCycle,
		&l.RemainingAmount,
		&l.ReturnedAmount,
		&l.CreatedAt,
		&l.UpdatedAt,
		&l.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return loan.Loan{}, loan.ErrLoanNotFound
		}
		return loan.Loan{}, err
	}

	return l, nil
}

func (r *loanRepositoryImpl) List(ctx context.Context) ([]loan.Loan, error) {
	return r.list(ctx, `
		SELECT l.id, l.employee_id, l.ref_no, l.apply_date, l.loan_amount,
			   l.deduction_per_cycle, l.remaining_amount, l.returned_amount,
			   l.created_at, l.updated_at, e.name
		FROM loans l
		INNER JOIN employees e ON l.employee_id = e.id
		ORDER BY l.apply_date DESC
	`)
}

func (r *loanRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]loan.Loan, error) {
	return r.list(ctx, `
		SELECT l.id, l.employee_id, l.ref_no, l.apply_date, l.loan_amount,
			   l.deduction_per_cycle, l.remaining_amount, l.returned_amount,
			   l.created_at, l.updated_at, e.name
		FROM loans l
		INNER JOIN employees e ON l.employee_id = e.id
		WHERE l.employee_id = $1
		ORDER BY l.apply_date DESC
	`, employeeID)
}

func (r *loanRepositoryImpl) ListOutstanding(ctx context.Context, employeeID string) ([]loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, ref_no, apply_date, loan_amount,
			   deduction_per_cycle, remaining_amount, returned_amount,
			   created_at, updated_at
		FROM loans
		WHERE employee_id = $1 AND remaining_amount > 0
		ORDER BY apply_date
		FOR UPDATE
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loans []loan.Loan
	for rows.Next() {
		var l loan.Loan
		err := rows.Scan(
			&l.ID,
			&l.EmployeeID,
			&l.RefNo,
			&l.ApplyDate,
			&l.LoanAmount,
			&l.DeductionPerCycle,
			&l.RemainingAmount,
			&l.ReturnedAmount,
			&l.CreatedAt,
			&l.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		loans = append(loans, l)
	}

	return loans, rows.Err()
}

func (r *loanRepositoryImpl) ApplyDeduction(ctx context.Context, id string, amount decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE loans
		SET remaining_amount = remaining_amount - $2,
			returned_amount = returned_amount + $2,
			updated_at = NOW()
		WHERE id = $1 AND remaining_amount >= $2
	`
	commandTag, err := q.Exec(ctx, query, id, amount)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return loan.ErrLoanNotFound
	}
	return nil
}

func (r *loanRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loans []loan.Loan
	for rows.Next() {
		var l loan.Loan
		err := rows.Scan(
			&l.ID,
			&l.EmployeeID,
			&l.RefNo,
			&l.ApplyDate,
			&l.LoanAmount,
			&l.DeductionPerCycle,
			&l.RemainingAmount,
			&l.ReturnedAmount,
			&l.CreatedAt,
			&l.UpdatedAt,
			&l.EmployeeName,
		)
		if err != nil {
			return nil, err
		}
		loans = append(loans, l)
	}

	return loans, rows.Err()
}
