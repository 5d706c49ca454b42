package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/account"
	"github.com/staffhub-erp/staffhub-backend-go/internal/pkg/database"
)

type ledgerRepositoryImpl struct {
	db *database.DB
}

func NewLedgerRepository(db *database.DB) account.LedgerRepository {
	return &ledgerRepositoryImpl{db: db}
}

func (r *ledgerRepositoryImpl) Create(ctx context.Context, entry account.LedgerEntry) (account.LedgerEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_account_entries (
			id, employee_id, ref_no, description, debit, credit, balance,
			payment_method, payment_date, created_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, NOW()
		)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		entry.EmployeeID,
		entry.RefNo,
		entry.Description,
		entry.Debit,
		entry.Credit,
		entry.Balance,
		entry.PaymentMethod,
		entry.PaymentDate,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return account.LedgerEntry{}, account.ErrDuplicateRefNo
		}
		return account.LedgerEntry{}, err
	}

	return entry, nil
}

func (r *ledgerRepositoryImpl) GetLatestBalance(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT balance
		FROM employee_account_entries
		WHERE employee_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	var balance decimal.Decimal
	err := q.QueryRow(ctx, query, employeeID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Decimal{}, err
	}

	return balance, nil
}

func (r *ledgerRepositoryImpl) HasRefWithPrefix(ctx context.Context, prefix string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM employee_account_entries
			WHERE ref_no LIKE $1 || '%'
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, prefix).Scan(&exists)
	return exists, err
}

func (r *ledgerRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]account.LedgerEntry, error) {
	return r.list(ctx, `
		SELECT ea.id, ea.employee_id, ea.ref_no, ea.description, ea.debit,
			   ea.credit, ea.balance, ea.payment_method, ea.payment_date,
			   ea.created_at, e.name
		FROM employee_account_entries ea
		INNER JOIN employees e ON ea.employee_id = e.id
		WHERE ea.employee_id = $1
		ORDER BY ea.created_at, ea.id
	`, employeeID)
}

func (r *ledgerRepositoryImpl) List(ctx context.Context) ([]account.LedgerEntry, error) {
	return r.list(ctx, `
		SELECT ea.id, ea.employee_id, ea.ref_no, ea.description, ea.debit,
			   ea.credit, ea.balance, ea.payment_method, ea.payment_date,
			   ea.created_at, e.name
		FROM employee_account_entries ea
		INNER JOIN employees e ON ea.employee_id = e.id
		ORDER BY ea.created_at DESC
	`)
}

func (r *ledgerRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]account.LedgerEntry, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []account.LedgerEntry
	for rows.Next() {
		var entry account.LedgerEntry
		err := rows.Scan(
			&entry.ID,
			&entry.EmployeeID,
			&entry.RefNo,
			&entry.Description,
			&entry.Debit,
			&entry.Credit,
			&entry.Balance,
			&entry.PaymentMethod,
			&entry.PaymentDate,
			&entry.CreatedAt,
			&entry.EmployeeName,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
